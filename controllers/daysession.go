package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"burgerpos/config"
	"burgerpos/models"
	"burgerpos/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dateLayout = "2006-01-02"

// dayLocation is the restaurant's local timezone; legacy orders without a
// sessionDay are assigned to calendar days in this zone, not UTC.
var dayLocation = func() *time.Location {
	loc, err := time.LoadLocation(utils.TimezoneName())
	if err != nil {
		return time.UTC
	}
	return loc
}()

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// OrderOnDay reports whether an order belongs to the given day. Orders carry
// sessionDay since the day-session feature shipped; older records fall back
// to the date part of their creation timestamp.
func OrderOnDay(order models.Order, date string) bool {
	if order.SessionDay != "" {
		return order.SessionDay == date
	}
	if order.Timestamp.IsZero() {
		return false
	}
	return order.Timestamp.In(dayLocation).Format(dateLayout) == date
}

// GetDayStatus returns the session state for a date. A missing session
// document reads as not started, not ended.
func GetDayStatus(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	var session models.DaySession
	err := config.DaySessionCollection.FindOne(context.TODO(), bson.M{"_id": date}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusOK, models.DayStatus{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve day status"})
		return
	}

	c.JSON(http.StatusOK, models.DayStatus{
		IsDayStarted: session.IsDayStarted,
		IsDayEnded:   session.IsDayEnded,
	})
}

// startDaySession upserts the session document to the started state. Calling
// it again for the same date overwrites the same document, so a re-start is
// a no-op rather than a duplicate.
func startDaySession(ctx context.Context, date string) error {
	update := bson.M{
		"$set": bson.M{
			"isDayStarted": true,
			"isDayEnded":   false,
			"startedAt":    time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := config.DaySessionCollection.UpdateOne(ctx, bson.M{"_id": date}, update, opts)
	return err
}

func countActiveOrders(ctx context.Context, date string) (int, error) {
	cursor, err := config.OrderCollection.Find(ctx, bson.M{"isArchived": false})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	count := 0
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			continue
		}
		if OrderOnDay(order, date) {
			count++
		}
	}
	return count, cursor.Err()
}

// EndDay closes the day. It fails with 409 while any order of that day is
// still unarchived; a snapshot of type "end" is expected to follow.
func EndDay(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	active, err := countActiveOrders(context.TODO(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check active orders"})
		return
	}
	if active > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":        "Cannot end the day with active orders",
			"activeOrders": active,
		})
		return
	}

	update := bson.M{"$set": bson.M{"isDayEnded": true, "endedAt": time.Now()}}
	res, err := config.DaySessionCollection.UpdateOne(context.TODO(), bson.M{"_id": date}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end the day"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Day was never started"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Day ended"})
}

// Reset tokens are one-time and process-local; a restart invalidates them,
// which is acceptable for a manual destructive action.
var (
	resetTokensMu sync.Mutex
	resetTokens   = make(map[string]string)
)

// CreateResetToken issues the confirmation token required by ResetDay.
func CreateResetToken(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	token := uuid.New().String()
	resetTokensMu.Lock()
	resetTokens[date] = token
	resetTokensMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"date": date, "token": token})
}

func consumeResetToken(date, token string) bool {
	resetTokensMu.Lock()
	defer resetTokensMu.Unlock()
	stored, ok := resetTokens[date]
	if !ok || stored != token {
		return false
	}
	delete(resetTokens, date)
	return true
}

// ResetDay deletes the session document, the day's warehouse snapshots and
// the day's orders. The three deletes are independent writes; when one fails
// partway the reset is re-run to converge.
func ResetDay(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	if !consumeResetToken(date, c.Query("token")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Missing or invalid reset confirmation token"})
		return
	}

	ctx := context.TODO()

	if _, err := config.DaySessionCollection.DeleteOne(ctx, bson.M{"_id": date}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete day session, re-run the reset"})
		return
	}

	if _, err := config.SnapshotCollection.DeleteMany(ctx, bson.M{"sessionDay": date}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete snapshots, re-run the reset"})
		return
	}

	// Orders predating the sessionDay field are matched by timestamp date,
	// so the scan goes through OrderOnDay rather than a store-side filter.
	cursor, err := config.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan orders, re-run the reset"})
		return
	}
	defer cursor.Close(ctx)

	deleted := 0
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			continue
		}
		if !OrderOnDay(order, date) {
			continue
		}
		if _, err := config.OrderCollection.DeleteOne(ctx, bson.M{"_id": order.ID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete orders, re-run the reset"})
			return
		}
		deleted++
	}

	c.JSON(http.StatusOK, gin.H{"message": "Day reset", "ordersDeleted": deleted})
}
