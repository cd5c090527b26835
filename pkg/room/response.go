package room

// Response is the envelope for every message the server pushes to a client
type Response struct {
	Key  string      `json:"key"`
	Data interface{} `json:"data,omitempty"`
}

func statusResponse(data interface{}) *Response {
	return &Response{
		Key:  "status",
		Data: data,
	}
}
