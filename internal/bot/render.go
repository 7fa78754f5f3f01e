package bot

import (
	"fmt"
	"strings"

	"artfeed/internal/model"
	"artfeed/internal/service"
)

// User-facing copy. Kept in one place so tests can assert on it.
const (
	msgWelcome = "Welcome to the art gallery!\n" +
		"Share your own work and rate what others have made."
	msgUploadPrompt   = "Send me your image as a photo. A caption is optional."
	msgUploadNotPhoto = "That doesn't look like a photo. Please send your image as a photo."
	msgCommentPrompt  = "Write your comment for this art as a plain text message."
	msgCommentEmpty   = "A comment can't be empty. Please send some text."
	msgCommentSaved   = "Comment saved."
	msgFeedExhausted  = "You have rated every art there is. Check back later or upload your own!"
	msgNoUploads      = "You haven't uploaded anything yet. Tap Upload to share your first art!"
	msgArtGone        = "This art is no longer available."
	msgRetry          = "Something went wrong on our side. Please try again."
	msgNeedStart      = "Please send /start first so I know who you are."
	msgNothingShown   = "Open an art with View first."
	msgAlreadyRated   = "You have already rated this art."
	toastApproved     = "Liked!"
	toastDisapproved  = "Disliked!"
)

const maxShownComments = 3

func menuKeyboard() Keyboard {
	return Keyboard{
		{{Label: "🎨 Upload", Tag: TagUpload}},
		{{Label: "👀 View", Tag: TagView}},
		{{Label: "👤 Profile", Tag: TagProfile}},
	}
}

func artKeyboard() Keyboard {
	return Keyboard{
		{
			{Label: "❤️ Like", Tag: TagApprove},
			{Label: "👎 Dislike", Tag: TagDisapprove},
		},
		{{Label: "💬 Comment", Tag: TagCommentBegin}},
		{{Label: "🔙 Menu", Tag: TagMenu}},
	}
}

func profileKeyboard() Keyboard {
	return Keyboard{
		{
			{Label: "⬅️ Prev", Tag: TagProfilePrev},
			{Label: "➡️ Next", Tag: TagProfileNext},
		},
		{{Label: "🔙 Menu", Tag: TagMenu}},
	}
}

func menuOnlyKeyboard() Keyboard {
	return Keyboard{{{Label: "🔙 Menu", Tag: TagMenu}}}
}

// artCaption renders a feed entry: the owner's caption (if any) above the
// current counters.
func artCaption(a *model.Art) string {
	counters := fmt.Sprintf("❤️ %d | 👎 %d", a.Likes, a.Dislikes)
	if a.Caption == "" {
		return counters
	}
	return a.Caption + "\n\n" + counters
}

// profileCaption renders one page of the owner's gallery: aggregate stats,
// the indexed art's counters and its latest comments.
func profileCaption(p *service.ProfilePage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your gallery: %d arts, ❤️ %d, 👎 %d\n", p.Stats.Arts, p.Stats.Likes, p.Stats.Dislikes)
	fmt.Fprintf(&b, "Art %d of %d — ❤️ %d | 👎 %d", p.Index+1, p.Total, p.Art.Likes, p.Art.Dislikes)
	if p.Art.Caption != "" {
		b.WriteString("\n")
		b.WriteString(p.Art.Caption)
	}
	if n := len(p.Comments); n > 0 {
		b.WriteString("\n\nLatest comments:")
		first := n - maxShownComments
		if first < 0 {
			first = 0
		}
		for _, c := range p.Comments[first:] {
			b.WriteString("\n• ")
			b.WriteString(c.Body)
		}
	}
	return b.String()
}

func uploadConfirmation(artID int64) string {
	return fmt.Sprintf("Your art #%d is in! Other users can rate it now.", artID)
}
