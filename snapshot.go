package browserdetails

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Snapshot is the read-only view of a request the message is built from.
type Snapshot struct {
	// UserAgent is the raw header value, empty when absent.
	UserAgent string
	// Params holds query and form parameters; form values win on conflict.
	Params url.Values
	// Ajax is true when the request declares itself as script-issued.
	Ajax bool
}

// Param returns the last value of a parameter and whether it was sent.
// Repeated keys resolve like Rack: the last occurrence wins.
func (s Snapshot) Param(name string) (string, bool) {
	values, ok := s.Params[name]
	if !ok {
		return "", false
	}
	if len(values) == 0 {
		return "", true
	}
	return values[len(values)-1], true
}

// NewSnapshot captures the fields of r needed to describe it.
//
// Form bodies are read from a buffered copy and r.Body is replaced by a reader
// yielding the same bytes, so downstream handlers observe an unread body.
func NewSnapshot(r *http.Request, opts ...Option) Snapshot {
	return newOptions(opts...).snapshot(r)
}

func (o *options) snapshot(r *http.Request) Snapshot {
	return Snapshot{
		UserAgent: r.UserAgent(),
		Params:    requestParams(r, o.maxFormBytes),
		Ajax:      o.ajax != nil && o.ajax(r),
	}
}

func requestParams(r *http.Request, limit int64) url.Values {
	params := url.Values{}
	for k, v := range r.URL.Query() {
		params[k] = v
	}

	form := r.PostForm
	if form == nil {
		// Parse failures only cost the form parameters.
		form, _ = peekForm(r, limit)
	}
	for k, v := range form {
		params[k] = v
	}

	return params
}

// restoredBody replays buffered bytes before the unread remainder while
// closing the original body.
type restoredBody struct {
	io.Reader
	io.Closer
}

func peekForm(r *http.Request, limit int64) (url.Values, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return nil, nil
	}

	contentType, ctParams, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, ErrUnsupportedForm
	}
	if contentType != "application/x-www-form-urlencoded" && contentType != "multipart/form-data" {
		return nil, ErrUnsupportedForm
	}

	original := r.Body
	buf, readErr := io.ReadAll(io.LimitReader(original, limit+1))
	r.Body = restoredBody{
		Reader: io.MultiReader(bytes.NewReader(buf), original),
		Closer: original,
	}
	if readErr != nil {
		return nil, readErr
	}
	if int64(len(buf)) > limit {
		return nil, ErrFormTooLarge
	}

	if contentType == "multipart/form-data" {
		return multipartValues(buf, ctParams["boundary"])
	}
	return url.ParseQuery(string(buf))
}

// multipartValues collects non-file fields; file parts are skipped unread.
func multipartValues(body []byte, boundary string) (url.Values, error) {
	if boundary == "" {
		return nil, ErrUnsupportedForm
	}

	values := url.Values{}
	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return values, err
		}
		if part.FormName() == "" || part.FileName() != "" {
			continue
		}
		v, err := io.ReadAll(part)
		if err != nil {
			return values, err
		}
		values.Add(part.FormName(), string(v))
	}
}
