package api

import (
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"blog-cli/types"
	"blog-cli/version"

	"github.com/google/uuid"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second

const defaultApiHost = "https://renderserver-ww79.onrender.com"
const developmentApiHost = "http://localhost:3500"

type Api struct {
	host   string
	client *http.Client
}

var _ types.ApiClient = (*Api)(nil)

// Client is set by the root command once flags and env are resolved.
var Client types.ApiClient

func NewApi(host string) *Api {
	return &Api{
		host:   strings.TrimRight(host, "/"),
		client: tracedClient,
	}
}

// GetApiHost resolves the post service host from the environment. Read at
// call time so values loaded from .env files are picked up.
func GetApiHost() string {
	if host := os.Getenv("BLOG_API_HOST"); host != "" {
		return host
	}
	if os.Getenv("BLOG_ENV") == "development" {
		return developmentApiHost
	}
	return defaultApiHost
}

func PostUrl(host string, postId int) string {
	return strings.TrimRight(host, "/") + "/posts/" + strconv.Itoa(postId)
}

type tracedTransport struct {
	underlyingTransport http.RoundTripper
}

// RoundTrip tags each request with an id so client and service logs can be matched up
func (t *tracedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqId := uuid.New().String()
	req.Header.Set("X-Request-Id", reqId)
	req.Header.Set("User-Agent", "blog-cli/"+version.Version)

	startedAt := time.Now()
	resp, err := t.underlyingTransport.RoundTrip(req)
	if err != nil {
		log.Printf("%s %s [%s] failed after %s: %v\n", req.Method, req.URL.Path, reqId, time.Since(startedAt), err)
		return nil, err
	}

	log.Printf("%s %s [%s] -> %d in %s\n", req.Method, req.URL.Path, reqId, resp.StatusCode, time.Since(startedAt))
	return resp, nil
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var tracedClient = &http.Client{
	Transport: &tracedTransport{
		underlyingTransport: &http.Transport{
			DialContext: netDialer.DialContext,
		},
	},
	Timeout: fastReqTimeout,
}
