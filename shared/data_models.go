package shared

type Post struct {
	Id       int    `json:"id"`
	Title    string `json:"title"`
	Datetime string `json:"datetime"`
	Body     string `json:"body"`
}
