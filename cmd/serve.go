package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordgrid/constants"
	"github.com/jsphweid/chordgrid/db"
	"github.com/jsphweid/chordgrid/model"
	"github.com/jsphweid/chordgrid/session"
)

var registry = session.NewRegistry()

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the grid API",
	Long:  `Serves the grid API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// getSession resolves the {id} path var, writing the 404 itself so
// handlers can just bail on nil.
func getSession(w http.ResponseWriter, r *http.Request) *session.Session {
	id := mux.Vars(r)["id"]
	s, ok := registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no session %v", id))
		return nil
	}
	return s
}

func handleCreateSession(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.CreateSessionRequest
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	s := session.New(input.RecordingID, input.Analysis)
	registry.Add(s)

	g := s.Grid()
	res := model.CreateSessionResponse{
		SessionID:    s.ID,
		ShiftCount:   g.ShiftCount,
		PaddingCount: g.PaddingCount,
		CellCount:    len(g.Cells),
	}
	if input.RecordingID != "" && constants.GetMetadataTable() != "" {
		metadatas := db.GetTrackMetadatas([]string{input.RecordingID})
		if m, ok := metadatas[input.RecordingID]; ok {
			res.Metadata = &m
		}
	}
	json.NewEncoder(w).Encode(res)
}

func handleSessions(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(model.SessionsResponse{SessionIDs: registry.IDs()})
}

func handleGrid(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	measuresPerRow := constants.DefaultMeasuresPerRow
	if raw := r.URL.Query().Get("measuresPerRow"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "measuresPerRow must be an integer")
			return
		}
		measuresPerRow = n
	}
	json.NewEncoder(w).Encode(model.GridResponse{Rows: s.Rows(measuresPerRow)})
}

// handleCorrections accepts the new set and returns before the grid
// rebuilds; readers keep the old grid until the debounce fires.
func handleCorrections(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	var cs model.CorrectionSet
	if err := json.Unmarshal(reqBody, &cs); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}
	s.SetCorrections(cs)
	w.WriteHeader(http.StatusAccepted)
}

func handleLocate(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "t must be a number")
		return
	}
	json.NewEncoder(w).Encode(model.LocateResponse{Index: s.Locate(t)})
}

func handleCell(w http.ResponseWriter, r *http.Request) {
	s := getSession(w, r)
	if s == nil {
		return
	}
	i, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}
	c, t, ok := s.Cell(i)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no cell %v", i))
		return
	}
	json.NewEncoder(w).Encode(model.CellResponse{
		Index:     c.VisualIndex,
		Chord:     c.Chord,
		Timestamp: t,
		Clickable: c.Clickable,
	})
}

// NewRouter wires every route. Exported so tests can drive the mux
// directly.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/sessions", handleCreateSession).Methods("POST")
	router.HandleFunc("/sessions", handleSessions).Methods("GET")
	router.HandleFunc("/sessions/{id}/grid", handleGrid).Methods("GET")
	router.HandleFunc("/sessions/{id}/corrections", handleCorrections).Methods("POST")
	router.HandleFunc("/sessions/{id}/locate", handleLocate).Methods("GET")
	router.HandleFunc("/sessions/{id}/cells/{index}", handleCell).Methods("GET")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	fmt.Printf("Listening on :%v\n", constants.GetPort())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
