package telegram

// Wire types for the subset of the Bot API this bot consumes.

// Update is one inbound event from getUpdates.
type Update struct {
	ID            int64          `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// Message is an inbound chat message.
type Message struct {
	ID      int         `json:"message_id"`
	From    *User       `json:"from,omitempty"`
	Chat    Chat        `json:"chat"`
	Text    string      `json:"text,omitempty"`
	Caption string      `json:"caption,omitempty"`
	Photo   []PhotoSize `json:"photo,omitempty"`
}

// User identifies the sender of a message or button press.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

// Chat identifies where to answer.
type Chat struct {
	ID int64 `json:"id"`
}

// PhotoSize is one rendition of an uploaded photo; the platform lists them
// smallest first.
type PhotoSize struct {
	FileID string `json:"file_id"`
}

// CallbackQuery is an inline button press.
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

// inlineKeyboard mirrors reply_markup.inline_keyboard.
type inlineKeyboard struct {
	Buttons [][]inlineButton `json:"inline_keyboard"`
}

type inlineButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}
