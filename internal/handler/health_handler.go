package handler

import "net/http"

// Health はプロセスの生存確認エンドポイント。
// 外部依存を持たないため、プロセスが応答できれば常に200を返す。
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
