// seedauth creates or repairs the credential file the server reads at startup.
//
// Usage: seedauth [-config path] [-question Q] [-answer A] <initial-password>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/damataprodutora/portfolio-backend/internal/auth"
)

func main() {
	configPath := flag.String("config", "config.json", "path of the credential file to write")
	question := flag.String("question", "What is the best spot on campus?", "secret recovery question")
	answer := flag.String("answer", "The little table", "answer to the secret question")
	flag.Parse()

	password := flag.Arg(0)
	if password == "" {
		fmt.Fprintln(os.Stderr, "Error: no initial password supplied.")
		fmt.Fprintln(os.Stderr, "Usage: seedauth [-config path] [-question Q] [-answer A] <initial-password>")
		os.Exit(1)
	}

	if *question == "" || *answer == "" {
		log.Fatal("secret question and answer must not be empty")
	}

	log.Println("Hashing password and secret answer...")

	passwordHash, err := auth.HashSecret(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	answerHash, err := auth.HashSecret(*answer)
	if err != nil {
		log.Fatalf("hash secret answer: %v", err)
	}

	creds := auth.Credentials{
		AdminPasswordHash: passwordHash,
		SecretQuestion:    *question,
		SecretAnswerHash:  answerHash,
	}

	if err := auth.WriteCredentials(*configPath, creds); err != nil {
		log.Fatalf("write credential file: %v", err)
	}

	log.Printf("Credential file %s created/updated.", *configPath)
	log.Println("Password and secret question are set.")
}
