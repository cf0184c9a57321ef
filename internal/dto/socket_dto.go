// FILE: internal/dto/socket_dto.go
package dto

// Id in a create request is ignored; the store assigns it.
type CreateSocketRequest struct {
	Id      uint64 `json:"id"`
	Brand   string `json:"brand"`
	Chipset string `json:"chipset"`
}

type SocketResponse struct {
	Id      uint64 `json:"id"`
	Brand   string `json:"brand"`
	Chipset string `json:"chipset"`
}
