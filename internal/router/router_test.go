package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dog-walk-tracker/internal/router"
)

func TestHTTP_EndToEnd_WalkLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// 1) Sin sesión no se puede escribir
	{
		st, _ := doReq(t, ts.URL, "POST", "/walks", "", map[string]any{
			"member": "Chris",
			"poop":   true,
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without member header, got %d", st)
		}
	}

	// 2) Chris registra un paseo completo (poop + pee)
	walkLogs := createWalk(t, ts.URL, "Chris", map[string]any{
		"member": "Chris",
		"poop":   true,
		"pee":    true,
	})
	if len(walkLogs) != 2 {
		t.Fatalf("expected 2 logs for poop+pee walk, got %d", len(walkLogs))
	}

	// 3) La lectura es abierta: los logs aparecen sin sesión
	{
		st, body := doReq(t, ts.URL, "GET", "/logs", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing logs, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 logs listed, got %d", len(items))
		}
	}

	// 4) Editar el paseo: pasa a ser solo pee, de Debbie
	{
		st, body := doReq(t, ts.URL, "PATCH", "/walks", "Debbie", map[string]any{
			"log_ids":    []string{walkLogs[0], walkLogs[1]},
			"member":     "Debbie",
			"created_at": time.Now().UTC().Format(time.RFC3339),
			"pee":        true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 updating walk, got %d body=%s", st, string(body))
		}
		var fresh []map[string]any
		mustUnmarshal(t, body, &fresh)
		if len(fresh) != 1 {
			t.Fatalf("expected 1 fresh log after update, got %d", len(fresh))
		}
		walkLogs = []string{fresh[0]["id"].(string)}
	}

	// 5) Borrar el paseo
	{
		st, body := doReq(t, ts.URL, "DELETE", "/walks", "Debbie", map[string]any{
			"log_ids": walkLogs,
		})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting walk, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/logs", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing logs, got %d", st)
		}
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 0 {
			t.Fatalf("expected no logs after delete, got %d", len(items))
		}
	}
}

func TestHTTP_EndToEnd_PointsAndStats(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Chris pasea (pee), Debbie pasea (poop)
	createWalk(t, ts.URL, "Chris", map[string]any{"member": "Chris", "pee": true})
	createWalk(t, ts.URL, "Debbie", map[string]any{"member": "Debbie", "poop": true})

	// Tarea asignada a Haydn
	{
		st, body := doReq(t, ts.URL, "POST", "/activities", "Chris", map[string]any{
			"kind":        "dinner",
			"logged_by":   "Chris",
			"assigned_to": "Haydn",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating activity, got %d body=%s", st, string(body))
		}
	}

	// Recordatorio creado y completado por Chris
	reminderID := createReminder(t, ts.URL, "Debbie", map[string]any{
		"kind":     "medication",
		"due_date": time.Now().UTC().Format("2006-01-02"),
	})
	{
		st, body := doReq(t, ts.URL, "POST", "/reminders/"+reminderID+"/complete", "Chris", map[string]any{
			"completed_by": "Chris",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 completing reminder, got %d body=%s", st, string(body))
		}
	}

	// Resumen: 1 log + 1 reminder para Chris, 1 log Debbie, 1 tarea Haydn
	{
		st, body := doReq(t, ts.URL, "GET", "/stats/summary", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}

		var resp struct {
			WeeklyPoints map[string]int `json:"weekly_points"`
			WalkerStats  map[string]struct {
				Walks int `json:"walks"`
			} `json:"walker_stats"`
			LatestWalk *struct {
				Member string `json:"member"`
			} `json:"latest_walk"`
		}
		mustUnmarshal(t, body, &resp)

		if resp.WeeklyPoints["Chris"] != 10 {
			t.Fatalf("expected Chris=10 points, got %d", resp.WeeklyPoints["Chris"])
		}
		if resp.WeeklyPoints["Debbie"] != 5 {
			t.Fatalf("expected Debbie=5 points, got %d", resp.WeeklyPoints["Debbie"])
		}
		if resp.WeeklyPoints["Haydn"] != 5 {
			t.Fatalf("expected Haydn=5 points, got %d", resp.WeeklyPoints["Haydn"])
		}
		if resp.LatestWalk == nil {
			t.Fatal("expected a latest walk in summary")
		}
	}

	// Día de hoy: los dos paseos
	{
		st, body := doReq(t, ts.URL, "GET", "/stats/day", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 day stats, got %d body=%s", st, string(body))
		}
		var resp struct {
			WalksCount int `json:"walks_count"`
		}
		mustUnmarshal(t, body, &resp)
		// Los dos paseos se crearon con segundos de diferencia: caen en
		// el mismo cluster de 30 minutos.
		if resp.WalksCount != 1 {
			t.Fatalf("expected 1 clustered walk today, got %d", resp.WalksCount)
		}
	}

	// Analytics con ventana chica
	{
		st, body := doReq(t, ts.URL, "GET", "/stats/analytics?days=7", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 analytics, got %d body=%s", st, string(body))
		}
		var resp struct {
			Last7Days []map[string]any `json:"last_7_days"`
		}
		mustUnmarshal(t, body, &resp)
		if len(resp.Last7Days) != 7 {
			t.Fatalf("expected 7 day buckets, got %d", len(resp.Last7Days))
		}
	}
}

func TestHTTP_Reminders_DuplicateOpenRejected(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	due := time.Now().UTC().Format("2006-01-02")

	createReminder(t, ts.URL, "Chris", map[string]any{
		"kind":     "grooming",
		"due_date": due,
	})

	st, _ := doReq(t, ts.URL, "POST", "/reminders", "Chris", map[string]any{
		"kind":     "grooming",
		"due_date": due,
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate open reminder, got %d", st)
	}
}

func TestHTTP_CreateWalk_RejectsEmptyWalk(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/walks", "Chris", map[string]any{
		"member": "Chris",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for a walk without logs, got %d", st)
	}
}

func createWalk(t *testing.T, baseURL, member string, payload map[string]any) []string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/walks", member, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create walk, got %d body=%s", st, string(body))
	}

	var resp []struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &resp)

	ids := make([]string, 0, len(resp))
	for _, l := range resp {
		if l.ID == "" {
			t.Fatalf("create walk: missing log id body=%s", string(body))
		}
		ids = append(ids, l.ID)
	}
	return ids
}

func createReminder(t *testing.T, baseURL, member string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/reminders", member, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create reminder, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, body, &resp)
	if resp.ID == "" {
		t.Fatalf("create reminder: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, member string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if member != "" {
		req.Header.Set("X-Member", member)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func mustUnmarshal(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(body), err)
	}
}
