// FILE: internal/dto/cpu_dto.go
package dto

// SocketReference is the nested socket in a CPU payload. Only the id is
// read; brand and chipset sent by clients are ignored.
type SocketReference struct {
	Id uint64 `json:"id"`
}

// CpuRequest is used for both create and full-replace update. A missing
// socket stores no reference.
type CpuRequest struct {
	Id     uint64           `json:"id"`
	Brand  string           `json:"brand"`
	Model  string           `json:"model"`
	Socket *SocketReference `json:"socket"`
}

type CpuResponse struct {
	Id     uint64          `json:"id"`
	Brand  string          `json:"brand"`
	Model  string          `json:"model"`
	Socket *SocketResponse `json:"socket"`
}
