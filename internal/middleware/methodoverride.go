package middleware

import "net/http"

// MethodOverride lets HTML forms express PUT and DELETE through a hidden
// _method field on a POST. Only those two verbs are honoured.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err == nil {
				switch r.PostForm.Get("_method") {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
