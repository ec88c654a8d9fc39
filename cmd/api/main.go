package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/manthan270/hirelite/internal/server"
)

func main() {
	srv := server.NewServer()

	log.Printf("hirelite listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %s", err)
	}
}
