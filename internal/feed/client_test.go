package feed

import (
	"context"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardFixture = `{
	"events": [
		{
			"id": "600040123",
			"name": "UFC 300: Pereira vs. Hill",
			"shortName": "UFC 300",
			"date": "2026-04-13T02:00Z",
			"competitions": [
				{
					"id": "401640123",
					"competitors": [
						{
							"id": "3088232",
							"winner": true,
							"athlete": {"displayName": "Alex Pereira", "shortName": "A. Pereira"}
						},
						{
							"id": "4423264",
							"winner": false,
							"athlete": {"displayName": "Jamahal Hill", "shortName": "J. Hill"}
						}
					],
					"status": {
						"type": {"completed": true, "description": "Final", "state": "post"},
						"result": {"displayName": "KO (head kick)", "shortDisplayName": "KO"}
					}
				},
				{
					"id": "401640124",
					"competitors": [
						{
							"id": "2500021",
							"winner": false,
							"athlete": {"displayName": "Max Holloway", "shortName": "M. Holloway"}
						},
						{
							"id": "2611557",
							"winner": false,
							"athlete": {"displayName": "Justin Gaethje", "shortName": "J. Gaethje"}
						}
					],
					"status": {
						"type": {"completed": false, "description": "In Progress", "state": "in"}
					}
				}
			]
		}
	]
}`

func newMockedClient(t *testing.T) *Client {
	t.Helper()
	client := NewClient("https://feed.test/mma/ufc", 5*time.Second)
	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestFetchScoreboard(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", "https://feed.test/mma/ufc/scoreboard",
		httpmock.NewStringResponder(200, scoreboardFixture))

	scoreboard, err := client.FetchScoreboard(context.Background())
	require.NoError(t, err)
	require.Len(t, scoreboard.Events, 1)

	evt := scoreboard.Events[0]
	assert.Equal(t, "UFC 300: Pereira vs. Hill", evt.Name)
	require.Len(t, evt.Competitions, 2)

	start, err := evt.StartTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 13, 2, 0, 0, 0, time.UTC), start)

	done := evt.Competitions[0]
	assert.True(t, done.Completed())
	winner, ok := done.Winner()
	require.True(t, ok)
	assert.Equal(t, "Alex Pereira", winner.Name())
	// Structured result detail beats the generic status description
	assert.Equal(t, "KO (head kick)", done.MethodText())

	live := evt.Competitions[1]
	assert.False(t, live.Completed())
	_, ok = live.Winner()
	assert.False(t, ok)
	assert.Equal(t, "In Progress", live.MethodText())
}

func TestFetchScoreboard_ServerError(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", "https://feed.test/mma/ufc/scoreboard",
		httpmock.NewStringResponder(503, "upstream unavailable"))

	_, err := client.FetchScoreboard(context.Background())
	assert.ErrorContains(t, err, "status=503")
}

func TestFetchScoreboard_MalformedPayload(t *testing.T) {
	client := newMockedClient(t)
	httpmock.RegisterResponder("GET", "https://feed.test/mma/ufc/scoreboard",
		httpmock.NewStringResponder(200, "<html>not json</html>"))

	_, err := client.FetchScoreboard(context.Background())
	assert.ErrorContains(t, err, "decoding response")
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
