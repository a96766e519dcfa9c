package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"loginapi/internal/config"
)

// seedUser is a demo credential pushed through the registration endpoint.
type seedUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var demoUsers = []seedUser{
	{Email: "alice@example.com", Password: "alice-password-1"},
	{Email: "bob@example.com", Password: "bob-password-1"},
	{Email: "carol@example.com", Password: "carol-password-1"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	base := fmt.Sprintf("http://localhost:%s", cfg.ServerPort)

	seeded := 0
	for _, u := range demoUsers {
		if err := registerUser(base, u); err != nil {
			log.Printf("Skipping %s: %v", u.Email, err)
			continue
		}
		log.Printf("Registered %s", u.Email)
		seeded++
	}

	log.Printf("Seed complete: %d/%d users registered", seeded, len(demoUsers))
}

func registerUser(base string, u seedUser) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := http.Post(base+"/api/auth/register", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post register: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
