// Package apitest provides an in-memory VideoGenius API for tests. It speaks
// the same JSON/multipart protocol as the real server, issues HS256 tokens and
// keeps a points ledger, and records what it received so tests can assert on
// the wire format.
package apitest

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the price of one generation job in points.
const DefaultCost = 10

// Claims identifies the account a token was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

type account struct {
	id     int64
	name   string
	email  string
	hash   []byte
	points int64
}

type userJSON struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int64  `json:"points"`
}

func (a *account) json() userJSON {
	return userJSON{ID: a.id, Name: a.name, Email: a.email, Points: a.points}
}

// Submission is what the server saw on /generate-video.
type Submission struct {
	Mode          string // "text" or "image"
	ContentType   string
	Authorization string
	Fields        map[string]string
	Image         []byte
	ImageFilename string
	ImageType     string
}

type override struct {
	status int
	body   any
}

// Server is a fake VideoGenius API backed by httptest.
type Server struct {
	srv    *httptest.Server
	secret []byte

	// Cost is charged per generation job.
	Cost int64
	// JobID produces job identifiers; uuid strings when nil.
	JobID func() string

	mu          sync.Mutex
	nextID      int64
	accounts    map[string]*account
	submissions []Submission
	overrides   map[string]override

	requests atomic.Int64
	perPath  sync.Map // path -> *atomic.Int64
}

// NewServer starts a fake API. Close it when done.
func NewServer() *Server {
	s := &Server{
		secret:    []byte(uuid.NewString()),
		Cost:      DefaultCost,
		accounts:  make(map[string]*account),
		overrides: make(map[string]override),
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/verify-token", s.handleVerifyToken).Methods(http.MethodPost)
	api.HandleFunc("/generate-video", s.handleGenerate).Methods(http.MethodPost)
	api.HandleFunc("/user/points", s.handlePoints).Methods(http.MethodGet)
	r.Use(s.countRequests, s.applyOverrides)

	s.srv = httptest.NewServer(r)
	return s
}

// URL is the server root; the client appends /api itself.
func (s *Server) URL() string { return s.srv.URL }

func (s *Server) Close() { s.srv.Close() }

// Requests returns the total number of requests received.
func (s *Server) Requests() int64 { return s.requests.Load() }

// RequestsTo returns the number of requests received on path, e.g. "/api/login".
func (s *Server) RequestsTo(path string) int64 {
	v, ok := s.perPath.Load(path)
	if !ok {
		return 0
	}
	return v.(*atomic.Int64).Load()
}

// AddUser seeds an account and returns its id.
func (s *Server) AddUser(name, email, password string, points int64) int64 {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.accounts[email] = &account{id: s.nextID, name: name, email: email, hash: hash, points: points}
	return s.nextID
}

// SetPoints overwrites the balance of an account.
func (s *Server) SetPoints(email string, points int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[email]; ok {
		a.points = points
	}
}

// PointsOf returns the ledger balance of an account.
func (s *Server) PointsOf(email string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[email]; ok {
		return a.points
	}
	return 0
}

// Fail makes every request to path answer with status and a JSON body.
// A nil body sends no payload at all.
func (s *Server) Fail(path string, status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = override{status: status, body: body}
}

// LastSubmission returns the most recent /generate-video payload.
func (s *Server) LastSubmission() (Submission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.submissions) == 0 {
		return Submission{}, false
	}
	return s.submissions[len(s.submissions)-1], true
}

// IssueToken signs a token for userID valid for ttl; a negative ttl yields
// an expired token.
func (s *Server) IssueToken(userID int64, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		v, _ := s.perPath.LoadOrStore(r.URL.Path, new(atomic.Int64))
		v.(*atomic.Int64).Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) applyOverrides(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		o, ok := s.overrides[r.URL.Path]
		s.mu.Unlock()
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if o.body == nil {
			w.WriteHeader(o.status)
			return
		}
		writeJSON(w, o.status, o.body)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "missing required parameters")
		return
	}

	s.mu.Lock()
	_, exists := s.accounts[req.Email]
	s.mu.Unlock()
	if exists {
		writeMessage(w, http.StatusBadRequest, "email already registered")
		return
	}

	s.AddUser(req.Name, req.Email, req.Password, 0)
	writeMessage(w, http.StatusCreated, "registration successful")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "missing required parameters")
		return
	}

	s.mu.Lock()
	a, ok := s.accounts[req.Email]
	var u userJSON
	if ok {
		u = a.json()
	}
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(a.hash, []byte(req.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "wrong email or password")
		return
	}

	token, err := s.IssueToken(u.ID, 24*time.Hour)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "login successful", "token": token, "user": u})
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeMessage(w, http.StatusBadRequest, "missing token")
		return
	}

	u, status, msg := s.authenticate(req.Token)
	if status != http.StatusOK {
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "token valid", "user": u.json()})
}

func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	a, status, msg := s.authenticate(bearer(r))
	if status != http.StatusOK {
		writeMessage(w, status, msg)
		return
	}
	s.mu.Lock()
	points := a.points
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int64{"points": points})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	a, status, msg := s.authenticate(bearer(r))
	if status != http.StatusOK {
		writeMessage(w, status, msg)
		return
	}

	sub, err := readSubmission(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, sub)

	if a.points < s.Cost {
		writeMessage(w, http.StatusPaymentRequired, "insufficient balance")
		return
	}
	a.points -= s.Cost

	jobID := uuid.NewString()
	if s.JobID != nil {
		jobID = s.JobID()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"prompt_id":        jobID,
		"points_consumed":  s.Cost,
		"remaining_points": a.points,
	})
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// authenticate resolves a token to its account.
func (s *Server) authenticate(token string) (*account, int, string) {
	if token == "" {
		return nil, http.StatusUnauthorized, "missing token"
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, http.StatusUnauthorized, "token expired"
		}
		return nil, http.StatusUnauthorized, "invalid token"
	}
	if !parsed.Valid {
		return nil, http.StatusUnauthorized, "invalid token"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.id == claims.UserID {
			return a, http.StatusOK, ""
		}
	}
	return nil, http.StatusNotFound, "user not found"
}

func readSubmission(r *http.Request) (Submission, error) {
	sub := Submission{
		ContentType:   r.Header.Get("Content-Type"),
		Authorization: r.Header.Get("Authorization"),
		Fields:        make(map[string]string),
	}

	mediaType, _, err := mime.ParseMediaType(sub.ContentType)
	if err != nil {
		return sub, errors.New("missing content type")
	}

	switch mediaType {
	case "application/json":
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return sub, errors.New("malformed json body")
		}
		for k, v := range body {
			switch tv := v.(type) {
			case string:
				sub.Fields[k] = tv
			case float64:
				sub.Fields[k] = strconv.FormatFloat(tv, 'f', -1, 64)
			}
		}
		sub.Mode = "text"
		return sub, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return sub, errors.New("malformed multipart body")
		}
		for k, v := range r.MultipartForm.Value {
			if len(v) > 0 {
				sub.Fields[k] = v[0]
			}
		}
		sub.Mode = "text"
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			f, err := files[0].Open()
			if err != nil {
				return sub, err
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				return sub, err
			}
			sub.Mode = "image"
			sub.Image = data
			sub.ImageFilename = files[0].Filename
			sub.ImageType = files[0].Header.Get("Content-Type")
		}
		return sub, nil

	default:
		return sub, errors.New("unsupported content type " + mediaType)
	}
}
