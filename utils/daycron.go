package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"burgerpos/config"
	"burgerpos/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TimezoneName returns the restaurant's IANA timezone, configurable via
// TZ_LOCATION.
func TimezoneName() string {
	if tz := os.Getenv("TZ_LOCATION"); tz != "" {
		return tz
	}
	return "Europe/Warsaw"
}

// CheckUnclosedSessions runs every morning and flags days that were
// started but never ended. The manager gets a mail listing them.
func CheckUnclosedSessions() {
	location, err := time.LoadLocation(TimezoneName())
	if err != nil {
		location = time.UTC
	}
	today := time.Now().In(location).Format("2006-01-02")

	filter := bson.M{
		"isDayStarted": true,
		"isDayEnded":   false,
		"_id":          bson.M{"$lt": today},
	}
	cursor, err := config.DaySessionCollection.Find(context.TODO(), filter)
	if err != nil {
		log.Printf("unclosed session check failed: %v", err)
		return
	}
	defer cursor.Close(context.TODO())

	var unclosed []string
	for cursor.Next(context.TODO()) {
		var session models.DaySession
		if err := cursor.Decode(&session); err != nil {
			continue
		}
		unclosed = append(unclosed, session.Date)
	}
	if len(unclosed) == 0 {
		return
	}

	log.Printf("found %d unclosed day sessions: %v", len(unclosed), unclosed)

	to := os.Getenv("MANAGER_EMAIL")
	if to == "" {
		return
	}
	body := "The following days were started but never closed:\n"
	for _, day := range unclosed {
		body += fmt.Sprintf("  - %s\n", day)
	}
	body += "\nRecord an end-of-day warehouse count and close each day."
	if err := SendEmail(to, "Unclosed day sessions", body); err != nil {
		log.Printf("failed to send unclosed session mail: %v", err)
	}
}
