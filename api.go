package main

// API request types

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AddMessageRequest struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Content and theme updates are whole-row overwrites; pointer fields keep
// explicit nulls distinguishable from empty strings and are stored as given.

type UpdateContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	About       *string `json:"about"`
	Contact     *string `json:"contact"`
}

type UpdateThemeRequest struct {
	Title             *string `json:"title"`
	PrimaryColor      *string `json:"primaryColor"`
	SecondaryColor    *string `json:"secondaryColor"`
	AccentColor       *string `json:"accentColor"`
	BackgroundColor   *string `json:"backgroundColor"`
	TextColor         *string `json:"textColor"`
	NavbarButtonColor *string `json:"navbarButtonColor"`
}

// API response types

type ErrorResponse struct {
	Error string `json:"error"`
}

type ConfirmResponse struct {
	Message string `json:"message"`
}

type PlayCountResponse struct {
	Plays int `json:"plays"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
