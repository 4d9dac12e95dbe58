package sheets

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
}

func newTestClient(t *testing.T, respond func(r *http.Request) (int, string)) (*Client, *[]recordedRequest) {
	var recorded []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		recorded = append(recorded, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(body),
		})
		status, payload := respond(r)
		w.WriteHeader(status)
		io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("sheet-1", "test-token")
	c.http.SetBaseURL(srv.URL)
	return c, &recorded
}

func TestAppend(t *testing.T) {
	c, recorded := newTestClient(t, func(*http.Request) (int, string) { return http.StatusOK, "{}" })

	err := c.Append([]string{"123456", "Jam", "1050", "0", "1", "+88", "ts"})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	req := (*recorded)[0]
	if req.method != http.MethodPost || req.path != "/sheet-1/values/Sales!A:G:append" {
		t.Errorf("unexpected request: %s %s", req.method, req.path)
	}
	if !strings.Contains(req.query, "valueInputOption=USER_ENTERED") {
		t.Errorf("expected USER_ENTERED input option, got query %q", req.query)
	}
	if !strings.Contains(req.body, `"123456"`) || !strings.Contains(req.body, `"Jam"`) {
		t.Errorf("row cells missing from body: %s", req.body)
	}
}

func TestReadAll(t *testing.T) {
	payload := `{"range":"Sales!A1:G3","values":[["Sale ID","Product","Price","Due","Quantity","SellerNumber","Timestamp"],["1","Jam","1050","0","1","+88","ts"]]}`
	c, _ := newTestClient(t, func(*http.Request) (int, string) { return http.StatusOK, payload })

	rows, err := c.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll returned error: %v", err)
	}
	if len(rows) != 2 || rows[1][1] != "Jam" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestDeleteRow(t *testing.T) {
	c, recorded := newTestClient(t, func(*http.Request) (int, string) { return http.StatusOK, "{}" })

	if err := c.DeleteRow(3); err != nil {
		t.Fatalf("DeleteRow returned error: %v", err)
	}

	req := (*recorded)[0]
	if req.path != "/sheet-1:batchUpdate" {
		t.Errorf("unexpected path %q", req.path)
	}
	var body struct {
		Requests []struct {
			DeleteDimension struct {
				Range struct {
					StartIndex int `json:"startIndex"`
					EndIndex   int `json:"endIndex"`
				} `json:"range"`
			} `json:"deleteDimension"`
		} `json:"requests"`
	}
	if err := json.Unmarshal([]byte(req.body), &body); err != nil {
		t.Fatalf("failed to decode batchUpdate body: %v", err)
	}
	rng := body.Requests[0].DeleteDimension.Range
	if rng.StartIndex != 3 || rng.EndIndex != 4 {
		t.Errorf("unexpected delete range: %+v", rng)
	}
}

func TestErrorStatusSurfaces(t *testing.T) {
	c, _ := newTestClient(t, func(*http.Request) (int, string) { return http.StatusForbidden, "{}" })

	if _, err := c.ReadAll(); err == nil {
		t.Error("expected an error for a non-2xx sheets response")
	}
	if err := c.Replace(1, []string{"1"}); err == nil {
		t.Error("expected an error for a non-2xx sheets response")
	}
}
