package basic

type Response struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
}
