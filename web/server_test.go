package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxbot/game"
)

type fakeBot struct {
	lock   sync.Mutex
	report *game.TurnReport
}

func (b *fakeBot) State() ([]byte, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	return json.Marshal(b.report)
}

func (b *fakeBot) LastReport() *game.TurnReport {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.report
}

func (b *fakeBot) set(r *game.TurnReport) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.report = r
}

func newTestServer(t *testing.T, bot BotController) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(bot, zerolog.Nop())
	go hub.Run()
	srv := httptest.NewServer(NewServer(hub, bot, zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return hub, srv
}

func fetchDoc(t *testing.T, url string) *goquery.Document {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func TestStatusPage_BeforeFirstTurn(t *testing.T) {
	_, srv := newTestServer(t, &fakeBot{})

	doc := fetchDoc(t, srv.URL+"/")
	assert.Equal(t, 1, doc.Find("#waiting").Length())
	assert.Equal(t, 0, doc.Find("#turn").Length())
}

func TestStatusPage_RendersReport(t *testing.T) {
	bot := &fakeBot{}
	bot.set(&game.TurnReport{
		Turn:              12,
		Day:               true,
		Workers:           3,
		CityTiles:         2,
		ResearchPoints:    17,
		EligibleResources: 9,
		Actions:           []string{"m u_1 e", "bw 3 3"},
	})
	_, srv := newTestServer(t, bot)

	doc := fetchDoc(t, srv.URL+"/")
	assert.Equal(t, "12", doc.Find("td.turn").Text())
	assert.Equal(t, "day", doc.Find("td.phase").Text())
	assert.Equal(t, "3", doc.Find("td.workers").Text())
	assert.Equal(t, "2", doc.Find("td.city-tiles").Text())
	assert.Equal(t, "9", doc.Find("td.eligible").Text())

	var actions []string
	doc.Find("#actions li").Each(func(_ int, s *goquery.Selection) {
		actions = append(actions, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"m u_1 e", "bw 3 3"}, actions)
}

func TestStatusPage_UnknownPath(t *testing.T) {
	_, srv := newTestServer(t, &fakeBot{})

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStateEndpoint(t *testing.T) {
	bot := &fakeBot{}
	bot.set(&game.TurnReport{Turn: 4, Actions: []string{"bcity u_2"}})
	_, srv := newTestServer(t, bot)

	resp, err := http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()

	var report game.TurnReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 4, report.Turn)
	assert.Equal(t, []string{"bcity u_2"}, report.Actions)
}

func TestHub_BroadcastsTurns(t *testing.T) {
	bot := &fakeBot{}
	bot.set(&game.TurnReport{Turn: 0})
	hub, srv := newTestServer(t, bot)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var report game.TurnReport
	require.NoError(t, conn.ReadJSON(&report))
	assert.Equal(t, 0, report.Turn, "a new client gets the current state")

	bot.set(&game.TurnReport{Turn: 1, Actions: []string{"m u_1 n"}})
	hub.BroadcastFullState()

	require.NoError(t, conn.ReadJSON(&report))
	assert.Equal(t, 1, report.Turn)
	assert.Equal(t, []string{"m u_1 n"}, report.Actions)
}

func TestHub_NilIsNoop(t *testing.T) {
	var hub *Hub
	assert.NotPanics(t, hub.BroadcastFullState)
}
