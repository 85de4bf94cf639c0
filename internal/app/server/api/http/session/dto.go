package session

import "markskeeper/internal/app/client"

type stateInput struct{}

type loginInput struct {
	Body LoginRequest
}

type logoutInput struct{}

type stateOutput struct {
	Body StateResponse
}

type LoginRequest struct {
	Username string `json:"username" doc:"Имя пользователя"`
	Password string `json:"password" doc:"Пароль"`
}

type StateResponse struct {
	LoggedIn bool   `json:"loggedIn" doc:"Открыта ли сессия"`
	Username string `json:"username" doc:"Имя вошедшего пользователя"`
	Screen   string `json:"screen" enum:"login,marks" doc:"Экран, который нужно показать"`
	Error    string `json:"error,omitempty" doc:"Сообщение об ошибке ввода"`
}

func stateFromView(v client.View) StateResponse {
	return StateResponse{
		LoggedIn: v.LoggedIn,
		Username: v.Username,
		Screen:   string(v.Screen),
		Error:    v.Error,
	}
}
