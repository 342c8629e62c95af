package google_auth

// StatusResponse состояние подключения календаря
type StatusResponse struct {
	Connected bool    `json:"connected"`
	Email     *string `json:"email,omitempty"`
}

// ConnectResponse ответ с URL авторизации провайдера
type ConnectResponse struct {
	AuthURL string `json:"authUrl"`
}

// DisconnectResponse ответ на отключение календаря
type DisconnectResponse struct {
	Disconnected bool `json:"disconnected"`
}
