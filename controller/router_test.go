package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"kazrockets/auth"
	"kazrockets/config"
	"kazrockets/repository"
	"kazrockets/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB
var router *gin.Engine

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "POSTGRES_DB=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return config.Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	SetRoutes(router, db, persistence.NewInMemoryStore(time.Minute))

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM evaluations")
	db.Exec("DELETE FROM submissions")
	db.Exec("DELETE FROM competitive_events")
	db.Exec("UPDATE app_users SET team_id = NULL")
	db.Exec("DELETE FROM teams")
	db.Exec("DELETE FROM app_users")
}

func makeUserWithToken(t *testing.T, role repository.Role) (*repository.User, string) {
	user, err := service.NewUserService(db).CreateUser(service.UserCreate{
		Email:    fmt.Sprintf("%s@kazrockets.kz", uuid.NewString()[:8]),
		Password: "password123",
		Name:     "Test User",
		Role:     role,
	})
	assert.NoError(t, err)
	tokens, err := auth.CreateTokenPair(user)
	assert.NoError(t, err)
	return user, tokens.AccessToken
}

func doRequest(t *testing.T, method string, path string, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	defer TearDown()

	// no token
	recorder := doRequest(t, "GET", "/api/v1/teams", "", nil)
	assert.Equal(t, 401, recorder.Code)

	// garbage token
	recorder = doRequest(t, "GET", "/api/v1/teams", "not.a.token", nil)
	assert.Equal(t, 401, recorder.Code)

	// refresh tokens are not access tokens
	user, _ := makeUserWithToken(t, repository.RoleParticipant)
	tokens, err := auth.CreateTokenPair(user)
	assert.NoError(t, err)
	recorder = doRequest(t, "GET", "/api/v1/teams", tokens.RefreshToken, nil)
	assert.Equal(t, 401, recorder.Code)

	// a deleted user's token stops working even before it expires
	victim, victimToken := makeUserWithToken(t, repository.RoleParticipant)
	organizer, _ := makeUserWithToken(t, repository.RoleOrganizer)
	assert.NoError(t, service.NewUserService(db).DeleteUser(victim.Id, organizer))
	recorder = doRequest(t, "GET", "/api/v1/teams", victimToken, nil)
	assert.Equal(t, 401, recorder.Code)
}

func TestOrganizerOnlyRoutes(t *testing.T) {
	defer TearDown()
	_, participantToken := makeUserWithToken(t, repository.RoleParticipant)
	_, judgeToken := makeUserWithToken(t, repository.RoleJudge)
	_, organizerToken := makeUserWithToken(t, repository.RoleOrganizer)

	body := gin.H{
		"title":      "Nationals",
		"start_date": time.Now().Format(time.RFC3339),
		"end_date":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
	recorder := doRequest(t, "POST", "/api/v1/events", participantToken, body)
	assert.Equal(t, 403, recorder.Code)
	recorder = doRequest(t, "POST", "/api/v1/events", judgeToken, body)
	assert.Equal(t, 403, recorder.Code)

	recorder = doRequest(t, "POST", "/api/v1/events", organizerToken, body)
	assert.Equal(t, 201, recorder.Code)
	var event EventResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &event))

	recorder = doRequest(t, "DELETE", fmt.Sprintf("/api/v1/events/%s", event.Id), participantToken, nil)
	assert.Equal(t, 403, recorder.Code)
	recorder = doRequest(t, "DELETE", fmt.Sprintf("/api/v1/events/%s", event.Id), organizerToken, nil)
	assert.Equal(t, 200, recorder.Code)

	// the user list is organizer-only as well
	recorder = doRequest(t, "GET", "/api/v1/users", participantToken, nil)
	assert.Equal(t, 403, recorder.Code)
	recorder = doRequest(t, "GET", "/api/v1/users", organizerToken, nil)
	assert.Equal(t, 200, recorder.Code)
}

func submissionForm(t *testing.T, teamId uuid.UUID, eventId uuid.UUID, contentType string) (*bytes.Buffer, string) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	assert.NoError(t, writer.WriteField("team_id", teamId.String()))
	assert.NoError(t, writer.WriteField("event_id", eventId.String()))
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="design.pdf"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return buffer, writer.FormDataContentType()
}

func TestCreateSubmissionContentType(t *testing.T) {
	defer TearDown()
	captain, captainToken := makeUserWithToken(t, repository.RoleParticipant)
	organizer, _ := makeUserWithToken(t, repository.RoleOrganizer)

	team, err := service.NewTeamService(db).CreateTeam("Rockets", captain)
	assert.NoError(t, err)
	event, err := service.NewEventService(db).CreateEvent("Qualifier", time.Now(), time.Now().Add(48*time.Hour), organizer)
	assert.NoError(t, err)

	sendForm := func(contentType string) *httptest.ResponseRecorder {
		body, formContentType := submissionForm(t, team.Id, event.Id, contentType)
		request := httptest.NewRequest("POST", "/api/v1/submissions", body)
		request.Header.Set("Content-Type", formContentType)
		request.Header.Set("Authorization", "Bearer "+captainToken)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := sendForm("text/plain")
	assert.Equal(t, 400, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Only PDF files are allowed")

	recorder = sendForm("application/pdf")
	assert.Equal(t, 201, recorder.Code)
	var response SubmissionCreatedResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, repository.StatusPending, response.Status)
}
