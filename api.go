package main

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
)

// Download and upload of question sets uses the same JSON document the
// browser client stores in the library, so files round-trip between
// installs.

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func serveSetList(cfg *Config, library *Library, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		boards := library.all()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		securityHeaders(cfg, w)

		data, err := json.Marshal(boards)
		if err != nil {
			errs <- err
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		written, err := w.Write(data)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Question set list (%s) to %s in %s",
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveSet(cfg *Config, library *Library, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := strconv.Atoi(ps.ByName("id"))
		if err != nil {
			http.Error(w, "invalid set id", http.StatusBadRequest)

			return
		}

		board := library.get(id)
		if board == nil {
			http.Error(w, "no such set", http.StatusNotFound)

			return
		}

		filename := filenameSanitizer.ReplaceAllString(board.Title, "_") + ".json"

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		securityHeaders(cfg, w)

		data, err := json.MarshalIndent(board, "", "  ")
		if err != nil {
			errs <- err
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		_, err = w.Write(data)
		if err != nil {
			errs <- err

			return
		}

		logf(cfg, "SERVE: Question set %q to %s", board.Title, realIP(r))
	}
}

func uploadSet(cfg *Config, library *Library, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			http.Error(w, "failed to read upload", http.StatusBadRequest)

			return
		}

		board, err := library.importBoard(body)
		if err != nil {
			status := http.StatusBadRequest
			if err == errDuplicateGame {
				status = http.StatusConflict
			}
			http.Error(w, err.Error(), status)

			return
		}

		logf(cfg, "STORE: Imported question set %q from %s", board.Title, realIP(r))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(cfg, w)
		w.WriteHeader(http.StatusCreated)

		_, err = w.Write([]byte("Ok\n"))
		if err != nil {
			errs <- err
		}
	}
}

func deleteSet(cfg *Config, library *Library) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := strconv.Atoi(ps.ByName("id"))
		if err != nil {
			http.Error(w, "invalid set id", http.StatusBadRequest)

			return
		}

		if !library.delete(id) {
			http.Error(w, "no such set", http.StatusNotFound)

			return
		}

		logf(cfg, "STORE: Deleted question set %d at request of %s", id, realIP(r))

		w.WriteHeader(http.StatusNoContent)
	}
}

func clearSets(cfg *Config, library *Library) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		library.clear()

		logf(cfg, "STORE: Cleared question set library at request of %s", realIP(r))

		w.WriteHeader(http.StatusNoContent)
	}
}

func registerLibrary(cfg *Config, path string, library *Library, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+path, serveSetList(cfg, library, errs))
	mux.POST(cfg.prefix+path, uploadSet(cfg, library, errs))
	mux.DELETE(cfg.prefix+path, clearSets(cfg, library))
	mux.GET(cfg.prefix+path+"/:id", serveSet(cfg, library, errs))
	mux.DELETE(cfg.prefix+path+"/:id", deleteSet(cfg, library))
}
