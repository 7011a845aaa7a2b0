package helpers

import (
	"net/http"
	"strconv"
)

// PathID reads the named path value as a positive integer id. On a missing
// or malformed value it writes a 400 JSON error and returns false; callers
// should return immediately in that case.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	s := r.PathValue(name)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
