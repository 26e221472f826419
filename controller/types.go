package controller

import "encoding/json"

type renderRequest struct {
	Template string `json:"template"`
	// Raw so a non-object payload can be rejected with a clear message
	// instead of a generic bind error.
	Variables json.RawMessage `json:"variables"`
}

type saveRequest struct {
	Directory string `json:"directory"`
	Filename  string `json:"filename"`
	Content   string `json:"content"`
}

type settingsRequest struct {
	AdditionalRoot string `json:"additional_root"`
	// Pointer so an absent color keeps the stored default while a
	// present invalid one falls back to the whitelist.
	NavbarColor *string `json:"navbar_color"`
}

type deployRequest struct {
	Host      string `json:"host" binding:"required"`
	Port      int    `json:"port"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Directory string `json:"directory" binding:"required"`
	Filename  string `json:"filename" binding:"required"`
	Content   string `json:"content"`
}
