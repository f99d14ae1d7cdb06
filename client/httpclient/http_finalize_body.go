package httpclient

import (
	"fmt"

	"github.com/andy-shea/ftchr/utils"
)

// FinalizeBody prepares BodyBytes exactly once per call. A middleware that
// already set BodyBytes wins over Body.
func (r *HTTPRequest) FinalizeBody() error {
	if r.BodyBytes != nil {
		return nil
	}
	if r.Method.IsGetClass() {
		return nil
	}

	buf, err := utils.BodyBytes(r.Body)
	if err != nil {
		return fmt.Errorf("prepare body: %w", err)
	}
	r.BodyBytes = buf
	return nil
}
