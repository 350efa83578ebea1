package utils

import (
	"encoding/json"
	"net/http"
)

// RespondMessage writes the API's failure envelope, {success:false,
// message}, with the given status. Every layer that rejects a request
// goes through here so the envelope cannot drift.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
