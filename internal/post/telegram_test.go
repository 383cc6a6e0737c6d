package post

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTelegram(t *testing.T, h http.HandlerFunc) *Telegram {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	tg := NewTelegram("test-token")
	tg.base = srv.URL
	return tg
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	tg := testTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"chat_id":    r.PostForm.Get("chat_id"),
			"text":       r.PostForm.Get("text"),
			"parse_mode": r.PostForm.Get("parse_mode"),
		}
		w.Write([]byte(`{"ok":true}`))
	})

	err := tg.SendMessage(context.Background(), "-100123", "*Guten Morgen 10HBFI!*")
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "-100123", gotForm["chat_id"])
	assert.Equal(t, "*Guten Morgen 10HBFI!*", gotForm["text"])
	assert.Equal(t, "Markdown", gotForm["parse_mode"])
}

func TestSendMessageAPIError(t *testing.T) {
	tg := testTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusBadRequest)
	})

	err := tg.SendMessage(context.Background(), "-100123", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestSendMessageMisconfigured(t *testing.T) {
	tg := NewTelegram("")
	require.Error(t, tg.SendMessage(context.Background(), "-100123", "text"))

	tg = NewTelegram("token")
	require.Error(t, tg.SendMessage(context.Background(), "", "text"))
}

func TestToTelegram(t *testing.T) {
	tg := testTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	send := ToTelegram(tg)
	err := send("-100123", "text")

	require.Error(t, err)
	sendErr := SendError{}
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, "-100123", sendErr.Target)
}

func TestToTelegramFallsBackToStdout(t *testing.T) {
	send := ToTelegram(nil)
	assert.NoError(t, send("-100123", "text"))

	send = ToTelegram(NewTelegram(""))
	assert.NoError(t, send("-100123", "text"))
}

func TestListChats(t *testing.T) {
	tg := testTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		w.Write([]byte(`{"ok":true,"result":[
			{"message":{"chat":{"id":-100123,"title":"Klasse 10HBFI","type":"supergroup"}}},
			{"message":{"chat":{"id":55,"title":"","type":"private"}}},
			{"message":{"chat":{"id":-100123,"title":"Klasse 10HBFI","type":"supergroup"}}},
			{"message":{"chat":{"id":-200456,"title":"Lehrerzimmer","type":"group"}}}
		]}`))
	})

	chats, err := tg.ListChats(context.Background())
	require.NoError(t, err)

	require.Len(t, chats, 2)
	assert.Equal(t, Chat{ID: -100123, Title: "Klasse 10HBFI", Type: "supergroup"}, chats[0])
	assert.Equal(t, Chat{ID: -200456, Title: "Lehrerzimmer", Type: "group"}, chats[1])
}
