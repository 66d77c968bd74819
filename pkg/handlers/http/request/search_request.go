package request

import (
	"github.com/valyala/fastjson"
)

type SearchRequest struct {
	Query string `json:"query"`
}

// ParseSearchRequest reads the body leniently: a missing, null or non-string
// query yields an empty query instead of a decoding error. Only a body that
// is not JSON at all is rejected.
func ParseSearchRequest(body []byte) (*SearchRequest, error) {
	req := &SearchRequest{}
	if len(body) == 0 {
		return req, nil
	}
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, err
	}
	q := v.Get("query")
	if q != nil && q.Type() == fastjson.TypeString {
		req.Query = string(q.GetStringBytes())
	}
	return req, nil
}
