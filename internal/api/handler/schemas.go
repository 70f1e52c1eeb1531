package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the generic success envelope for mutations.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signUpRequest struct {
	Name     string `json:"name"     validate:"required,max=80"`
	Surname  string `json:"surname"  validate:"required,max=80"`
	Email    string `json:"email"    validate:"required,email,max=80"`
	Password string `json:"password" validate:"required"`
}

type signUpResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ID           int64  `json:"id"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

// --- To-Do ---

type createToDoRequest struct {
	TodoText    string `json:"todo_text"    validate:"required,max=80"`
	CurrentTime string `json:"current_time" validate:"required,max=80"`
	Fatto       bool   `json:"fatto"`
}

// updateToDoRequest carries a partial update; nil fields are left unchanged.
type updateToDoRequest struct {
	TodoText *string `json:"todo_text" validate:"omitempty,max=80"`
	Fatto    *bool   `json:"fatto"`
}
