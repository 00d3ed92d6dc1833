package addic7ed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"addic7ed-downloader/internal/subtitle"

	"github.com/stretchr/testify/require"
)

const searchHTML = `<html><body>
<table class="tabel">
<tr><td><a href="/serie/Show/1/2/Pilot">Show - 01x02 - Pilot</a></td></tr>
<tr><td><a href="serie/Show/1/3/Next">Show - 01x03 - Next</a></td></tr>
<tr><td><a>no link</a></td></tr>
</table>
</body></html>`

const episodeHTML = `<html><body>
<table class="tabel95"><tr><td><span class="titulo">Show - 01x02 - Pilot <small>English subtitles</small></span></td></tr></table>
<table class="tabel95"><tr><td>navigation</td></tr></table>
<table class="tabel95">
<tr><td class="NewsTitle">Version LOL, 0.00 MBs</td></tr>
<tr><td class="newsDate">Works with 720p WEB</td></tr>
<tr><td class="language">English</td><td>Completed</td><td><a href="/original/1/0">Download</a></td></tr>
<tr><td class="language">French</td><td>95% Completed</td><td><a href="/original/1/1">Download</a> <a href="/updated/1/1">most updated</a></td></tr>
<tr><td>comments</td></tr>
</table>
<table class="tabel95"><tr><td>spacer</td></tr></table>
<table class="tabel95">
<tr><td class="NewsTitle">Version DIMENSION, 0.00 MBs</td></tr>
<tr><td class="newsDate">720p HDTV</td></tr>
<tr><td class="language">English</td><td>40% Completed</td><td><a href="/updated/2/0">Download</a></td></tr>
</table>
<table class="tabel95"><tr><td>footer</td></tr></table>
</body></html>`

type recordedRequest struct {
	path    string
	query   url.Values
	referer string
	agent   string
}

func newTestSite(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	mux := http.NewServeMux()
	record := func(r *http.Request) {
		requests = append(requests, recordedRequest{
			path:    r.URL.Path,
			query:   r.URL.Query(),
			referer: r.Header.Get("Referer"),
			agent:   r.Header.Get("User-Agent"),
		})
	}

	mux.HandleFunc("/search.php", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = w.Write([]byte(searchHTML))
	})
	mux.HandleFunc("/serie/Show/1/2/Pilot", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = w.Write([]byte(episodeHTML))
	})
	mux.HandleFunc("/updated/1/1", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = w.Write([]byte("1\n00:00:01,000 --> 00:00:02,000\nBonjour\n"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &requests
}

func TestNew(t *testing.T) {
	client, err := New("https://www.addic7ed.com/", 0, "")
	require.NoError(t, err)
	require.Equal(t, "https://www.addic7ed.com/", client.LastURL())
	require.Equal(t, DefaultUserAgent, client.userAgent)
	require.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	_, err = New("not a url", time.Second, "")
	require.Error(t, err)

	_, err = New("://broken", time.Second, "")
	require.Error(t, err)
}

func TestClient_RawTracksLastURL(t *testing.T) {
	server, requests := newTestSite(t)

	client, err := New(server.URL+"/", time.Second, "test-agent")
	require.NoError(t, err)

	ctx := context.Background()
	_, err = client.Raw(ctx, "/updated/1/1", url.Values{"lang": {"fr"}})
	require.NoError(t, err)
	require.Equal(t, server.URL+"/updated/1/1", client.LastURL())

	_, err = client.Raw(ctx, "../1/1", nil)
	require.NoError(t, err)

	require.Len(t, *requests, 2)
	first, second := (*requests)[0], (*requests)[1]

	require.Equal(t, server.URL+"/", first.referer)
	require.Equal(t, "fr", first.query.Get("lang"))
	require.Equal(t, "test-agent", first.agent)

	require.Equal(t, "/updated/1/1", second.path)
	require.Equal(t, server.URL+"/updated/1/1", second.referer)
	require.Empty(t, second.query)
}

func TestClient_RawStatusError(t *testing.T) {
	server, _ := newTestSite(t)

	client, err := New(server.URL+"/", time.Second, "")
	require.NoError(t, err)

	_, err = client.Raw(context.Background(), "/missing", nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	// failed requests do not move the session
	require.Equal(t, server.URL+"/", client.LastURL())
}

func TestClient_RawCanceledContext(t *testing.T) {
	server, _ := newTestSite(t)

	client, err := New(server.URL+"/", time.Second, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Raw(ctx, "/updated/1/1", nil)
	require.Error(t, err)
}

func TestSite_Search(t *testing.T) {
	server, requests := newTestSite(t)

	client, err := New(server.URL+"/", time.Second, "")
	require.NoError(t, err)
	site := NewSite(client)

	episodes, err := site.Search(context.Background(), "show 1x2")
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	require.Equal(t, "/serie/Show/1/2/Pilot", episodes[0].URL)
	require.Equal(t, "Show - 01x02 - Pilot", episodes[0].Title)
	require.Equal(t, "serie/Show/1/3/Next", episodes[1].URL)

	require.Len(t, *requests, 1)
	require.Equal(t, "show 1x2", (*requests)[0].query.Get("search"))
	require.Equal(t, "Search", (*requests)[0].query.Get("submit"))
	require.Equal(t, server.URL+"/search.php", client.LastURL())
}

func TestSite_EpisodeVersions(t *testing.T) {
	server, requests := newTestSite(t)

	client, err := New(server.URL+"/", time.Second, "")
	require.NoError(t, err)
	site := NewSite(client)
	ctx := context.Background()

	episodes, err := site.Search(ctx, "show 1x2")
	require.NoError(t, err)

	episode := episodes[0]
	require.NoError(t, episode.FetchVersions(ctx, site))
	require.Equal(t, "Show - 01x02 - Pilot", episode.Title)

	versions := episode.Versions()
	require.Len(t, versions, 3)

	require.Equal(t, "/original/1/0", versions[0].URL)
	require.Equal(t, "English", versions[0].Language)
	require.Equal(t, "LOL", versions[0].Release)
	require.Equal(t, "720p WEB", versions[0].Infos)
	require.Equal(t, "Completed", versions[0].Completeness)

	require.Equal(t, "/updated/1/1", versions[1].URL)
	require.Equal(t, "French", versions[1].Language)
	require.Equal(t, "95%", versions[1].Completeness)

	require.Equal(t, "/updated/2/0", versions[2].URL)
	require.Equal(t, "DIMENSION", versions[2].Release)
	require.Equal(t, "720p HDTV", versions[2].Infos)
	require.Equal(t, "40%", versions[2].Completeness)

	require.Equal(t, server.URL+"/search.php", (*requests)[1].referer)

	data, err := site.Download(ctx, versions[1].URL)
	require.NoError(t, err)
	require.Contains(t, string(data), "Bonjour")
	require.Equal(t, server.URL+"/serie/Show/1/2/Pilot", (*requests)[2].referer)
}

func TestSite_EpisodePageWithoutSections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><table class="tabel95"><tr><td>empty</td></tr></table></body></html>`))
	}))
	defer server.Close()

	client, err := New(server.URL+"/", time.Second, "")
	require.NoError(t, err)

	page, err := NewSite(client).EpisodePage(context.Background(), "/serie/none")
	require.NoError(t, err)
	require.Empty(t, page.Title())
	require.Empty(t, page.Sections())

	var _ subtitle.EpisodePage = page
}
