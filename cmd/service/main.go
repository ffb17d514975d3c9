package main

import (
	"embed"
	"log"
	"net/http"
	"os"

	"chordlab/internal/api"
)

//go:embed static/index.html
var staticFS embed.FS

func main() {
	port := getenv("PORT", "3010")

	srv := api.NewServer(api.TheoryEngine{})
	r := api.SetupRouter(srv)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		b, err := staticFS.ReadFile("static/index.html")
		if err != nil {
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(b)
	})

	log.Printf("chordlab listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("chordlab: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
