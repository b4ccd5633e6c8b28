package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/sashabaranov/go-openai"

	"go-moodlens/cronjobs"
	"go-moodlens/db"
	"go-moodlens/engine"
	"go-moodlens/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Print and check env
	apiKey := os.Getenv("OPENAI_API_KEY")
	var openaiClient *openai.Client
	if apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
		openaiClient = openai.NewClient(apiKey)
	} else {
		log.Println("OPENAI_API_KEY not set, summarization endpoints are disabled")
	}

	remoteURL := os.Getenv("REMOTE_MODEL_URL")
	if remoteURL != "" {
		fmt.Println("REMOTE_MODEL_URL: ", remoteURL)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	eng := engine.New(remoteURL, clockwork.NewRealClock())

	// Initialize cron jobs
	cronjobs.InitCronJobs(eng, firestoreClient)

	r := routes.SetupRouter(eng, firestoreClient, openaiClient)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
