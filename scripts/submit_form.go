// submit_form.go: standalone script to post an evaluation form to a running vendoreval server.
//
// Usage:
//
//	go run scripts/submit_form.go -form evaluation.yaml -api http://localhost:8700 -action score
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

func main() {
	formPath := flag.String("form", "evaluation.yaml", "path to a YAML or JSON evaluation form")
	apiURL := flag.String("api", "http://localhost:8700", "vendoreval API base URL")
	action := flag.String("action", "score", "score, suggest or export")
	out := flag.String("out", "", "write the response body to this file instead of stdout")
	dryRun := flag.Bool("dry-run", false, "print the request body without posting")
	flag.Parse()

	switch *action {
	case "score", "suggest", "export":
	default:
		log.Fatalf("unknown action %q", *action)
	}

	raw, err := os.ReadFile(*formPath)
	if err != nil {
		log.Fatalf("read form: %v", err)
	}

	// YAML is a superset of JSON; decode generically and re-encode as JSON.
	var form map[string]any
	if err := yaml.Unmarshal(raw, &form); err != nil {
		log.Fatalf("parse form: %v", err)
	}
	body, err := json.Marshal(form)
	if err != nil {
		log.Fatalf("encode form: %v", err)
	}

	if *dryRun {
		var pretty bytes.Buffer
		_ = json.Indent(&pretty, body, "", "  ")
		fmt.Println(pretty.String())
		return
	}

	client := &http.Client{Timeout: 30 * time.Second}
	url := fmt.Sprintf("%s/api/v1/evaluations/%s", *apiURL, *action)
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		log.Fatalf("%s returned %d: %s", url, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Fatalf("read response: %v", err)
	}
}
