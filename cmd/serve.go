package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/autochart/chart"
	"github.com/jsphweid/autochart/constants"
	"github.com/jsphweid/autochart/model"
	"github.com/jsphweid/autochart/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// charts are also written here as <id>.json when set
var saveDir string

var saveCharts bool

func init() {
	serveCmd.Flags().BoolVar(&saveCharts, "save", false, "keep every generated chart in CHART_OUT_PATH")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chart generation over HTTP",
	Long:  `Serves POST /generate on CHART_PORT (default 8080).`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, id string, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()}); err != nil {
		log.Printf("%v: could not write error response: %v", id, err)
	}
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	w.Header().Set("X-Request-Id", id)

	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, id, http.StatusBadRequest, err)
		return
	}

	var input model.GenerateRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		log.Printf("%v: could not unmarshal request body: %v", id, err)
		writeError(w, id, http.StatusBadRequest, err)
		return
	}

	opts, err := chart.FromModel(input.Options)
	if err != nil {
		writeError(w, id, http.StatusBadRequest, err)
		return
	}

	res, err := chart.Generate(input.Analysis, opts)
	if err != nil {
		log.Printf("%v: could not generate chart: %v", id, err)
		writeError(w, id, http.StatusBadRequest, err)
		return
	}
	log.Printf("%v: generated %v notes at %.1f bpm", id, res.NumFiltered, res.Bpm)

	if saveDir != "" {
		path := filepath.Join(saveDir, id+".json")
		if err := chart.WriteFile(path, res.Chart); err != nil {
			log.Printf("%v: could not save chart: %v", id, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err = chart.Write(w, model.GenerateResponse{
		ID:    id,
		Chart: res.Chart,
		Meta:  chart.NewMeta(res.Bpm, opts),
	})
	if err != nil {
		log.Printf("%v: could not write response: %v", id, err)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]string{"status": "ok", "chartVersion": constants.ChartVersion})
	if err != nil {
		log.Printf("could not write health response: %v", err)
	}
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/health", handleHealth).Methods("GET")
	return router
}

func NewHandler() http.Handler {
	return cors.Default().Handler(NewRouter())
}

func serve() {
	if saveCharts {
		saveDir = constants.GetOutDir()
		if err := util.EnsureDir(saveDir); err != nil {
			log.Fatal(err)
		}
	}

	port := constants.GetPort()
	log.Printf("Serving on :%v", port)
	log.Fatal(http.ListenAndServe(":"+port, NewHandler()))
}
