package controllers

import (
	"context"
	"fmt"
	"testing"

	"burgerpos/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testDay = "2026-08-31"

func useMockCollections(mt *mtest.T) {
	config.DaySessionCollection = mt.DB.Collection("dailySessions")
	config.SnapshotCollection = mt.DB.Collection("dailyWarehouseReports")
	config.OrderCollection = mt.DB.Collection("orders")
}

func ns(mt *mtest.T, coll string) string {
	return fmt.Sprintf("%s.%s", mt.DB.Name(), coll)
}

func activeOrderDoc() bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "orderNumber", Value: 7},
		{Key: "sessionDay", Value: testDay},
		{Key: "orderType", Value: "onsite"},
		{Key: "status", Value: "pending"},
		{Key: "isArchived", Value: false},
		{Key: "items", Value: bson.A{}},
	}
}

func startedCommand(t *testing.T, events []*event.CommandStartedEvent, name string) *event.CommandStartedEvent {
	t.Helper()
	for _, ev := range events {
		if ev.CommandName == name {
			return ev
		}
	}
	return nil
}

func TestEndDayRejectsWhileOrdersActive(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("active order blocks end", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "orders"), mtest.FirstBatch, activeOrderDoc()),
		)

		w := jsonRequest(EndDay, "POST", "/day/"+testDay+"/end", "", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "active")

		// the session document must not have been touched
		assert.Nil(t, startedCommand(mt.T, mt.GetAllStartedEvents(), "update"))
	})
}

func TestEndDaySetsEndedOnly(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no active orders", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "orders"), mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		w := jsonRequest(EndDay, "POST", "/day/"+testDay+"/end", "", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 200, w.Code)

		update := startedCommand(mt.T, mt.GetAllStartedEvents(), "update")
		require.NotNil(mt.T, update)
		first := update.Command.Lookup("updates").Array().Index(0).Value().Document()
		set := first.Lookup("u").Document().Lookup("$set").Document()

		_, err := set.LookupErr("isDayEnded")
		assert.NoError(mt.T, err)
		_, err = set.LookupErr("isDayStarted")
		assert.Error(mt.T, err, "ending a day must leave isDayStarted alone")
	})

	mt.Run("never started day", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "orders"), mtest.FirstBatch),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		w := jsonRequest(EndDay, "POST", "/day/"+testDay+"/end", "", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "never started")
	})
}

func TestStartDaySessionUpsertsOneDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("restart is the same upsert", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		require.NoError(mt.T, startDaySession(context.Background(), testDay))
		require.NoError(mt.T, startDaySession(context.Background(), testDay))

		events := mt.GetAllStartedEvents()
		updates := 0
		for _, ev := range events {
			if ev.CommandName != "update" {
				continue
			}
			updates++
			first := ev.Command.Lookup("updates").Array().Index(0).Value().Document()
			assert.True(mt.T, first.Lookup("upsert").Boolean())
			assert.Equal(mt.T, testDay, first.Lookup("q").Document().Lookup("_id").StringValue())
		}
		assert.Equal(mt.T, 2, updates, "both starts must target the same keyed document")
	})
}

func TestGetDayStatusDefaultsWhenMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing session", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "dailySessions"), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: testDay},
				{Key: "isDayStarted", Value: true},
				{Key: "isDayEnded", Value: false},
			}),
		)

		w := jsonRequest(GetDayStatus, "GET", "/day/"+testDay+"/status", "", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"isDayStarted":true`)
		assert.Contains(t, w.Body.String(), `"isDayEnded":false`)
	})

	mt.Run("missing session reads as not started", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "dailySessions"), mtest.FirstBatch),
		)

		w := jsonRequest(GetDayStatus, "GET", "/day/"+testDay+"/status", "", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"isDayStarted":false`)
		assert.Contains(t, w.Body.String(), `"isDayEnded":false`)
	})
}

func TestResetDayConvergesToNotStarted(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reset then status", func(mt *mtest.T) {
		useMockCollections(mt)

		resetTokensMu.Lock()
		resetTokens[testDay] = "confirm-1"
		resetTokensMu.Unlock()

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
			mtest.CreateCursorResponse(0, ns(mt, "orders"), mtest.FirstBatch, activeOrderDoc()),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateCursorResponse(0, ns(mt, "dailySessions"), mtest.FirstBatch),
		)

		w := jsonRequest(ResetDay, "POST", "/manager/day/"+testDay+"/reset?token=confirm-1",
			"", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"ordersDeleted":1`)

		w = jsonRequest(GetDayStatus, "GET", "/day/"+testDay+"/status", "", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"isDayStarted":false`)
		assert.Contains(t, w.Body.String(), `"isDayEnded":false`)
	})
}

func TestGetPriorEndSnapshotAbsenceIsNotAnError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first day of operation", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "dailyWarehouseReports"), mtest.FirstBatch),
		)

		w := jsonRequest(GetPriorEndSnapshot, "GET", "/warehouse/snapshots/"+testDay+"/prior-end",
			"", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"found":false`)
		assert.Contains(t, w.Body.String(), `"sessionDay":"2026-08-30"`)
	})

	mt.Run("prior end exists", func(mt *mtest.T) {
		useMockCollections(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "dailyWarehouseReports"), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "sessionDay", Value: "2026-08-30"},
				{Key: "type", Value: "end"},
				{Key: "snapshot", Value: bson.D{}},
			}),
		)

		w := jsonRequest(GetPriorEndSnapshot, "GET", "/warehouse/snapshots/"+testDay+"/prior-end",
			"", gin.Params{{Key: "date", Value: testDay}})
		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"found":true`)
		assert.Contains(t, w.Body.String(), `"sessionDay":"2026-08-30"`)
	})
}
