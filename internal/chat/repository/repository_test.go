package repository

import (
	"context"
	"log"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	Message "friendzone/internal/chat/model"
	"friendzone/pkg/kv"
	"friendzone/pkg/logger"
)

var (
	testStore  kv.Store
	testClient *goredis.Client
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	opts, err := goredis.ParseURL(connStr)
	if err != nil {
		log.Fatalf("failed to parse connection string: %v", err)
	}
	testClient = goredis.NewClient(opts)
	testStore = kv.NewStoreWithClient(testClient)

	if err := testClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to ping store: %v", err)
	}

	code := m.Run()

	testClient.Close()

	os.Exit(code)
}

func Test_AppendAndHistory(t *testing.T) {
	ctx := context.Background()
	t.Cleanup(func() {
		require.NoError(t, testClient.FlushAll(ctx).Err())
	})

	repo := NewChatRepository(testStore, logger.Logger{})
	chatID := "u1--u2"

	msgs := []*Message.Message{
		{ID: "m1", SenderID: "u1", Text: "hi", Timestamp: 100},
		{ID: "m2", SenderID: "u2", Text: "hey", Timestamp: 200},
		{ID: "m3", SenderID: "u1", Text: "how are you", Timestamp: 300},
	}
	for _, msg := range msgs {
		require.NoError(t, repo.Append(ctx, chatID, msg))
	}

	history, err := repo.History(ctx, chatID)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Ascending-timestamp store order.
	assert.Equal(t, "m1", history[0].ID)
	assert.Equal(t, "m2", history[1].ID)
	assert.Equal(t, "m3", history[2].ID)
}

func Test_History_DuplicateTimestamps(t *testing.T) {
	ctx := context.Background()
	t.Cleanup(func() {
		require.NoError(t, testClient.FlushAll(ctx).Err())
	})

	repo := NewChatRepository(testStore, logger.Logger{})
	chatID := "u1--u2"

	// Clock ties are permitted; both entries survive.
	require.NoError(t, repo.Append(ctx, chatID, &Message.Message{ID: "m1", SenderID: "u1", Text: "a", Timestamp: 100}))
	require.NoError(t, repo.Append(ctx, chatID, &Message.Message{ID: "m2", SenderID: "u2", Text: "b", Timestamp: 100}))

	history, err := repo.History(ctx, chatID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func Test_History_MalformedEntryFailsRead(t *testing.T) {
	ctx := context.Background()
	t.Cleanup(func() {
		require.NoError(t, testClient.FlushAll(ctx).Err())
	})

	repo := NewChatRepository(testStore, logger.Logger{})
	chatID := "u1--u2"

	require.NoError(t, repo.Append(ctx, chatID, &Message.Message{ID: "m1", SenderID: "u1", Text: "hi", Timestamp: 100}))

	// An entry that does not decode to the message shape poisons the read.
	require.NoError(t, testStore.ZAdd(ctx, kv.ChatMessagesKey(chatID), kv.ZMember{
		Score:  200,
		Member: `{"garbage":true}`,
	}))

	_, err := repo.History(ctx, chatID)
	require.Error(t, err)
}

func Test_History_EmptyChat(t *testing.T) {
	ctx := context.Background()

	repo := NewChatRepository(testStore, logger.Logger{})

	history, err := repo.History(ctx, "nobody--noone")
	require.NoError(t, err)
	assert.Empty(t, history)
}
