package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout; the reveal can take a while
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func main() {
	color.Cyan("🚀 Starting Support Chat API Smoke Test\n")

	// 1. List conversations (the store self-seeds a Welcome conversation)
	color.Yellow("\n1. Get All Conversations")
	resp, body, err := sendRequest("GET", "/chat/v1/conversations", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var listResp map[string]interface{}
	json.Unmarshal(body, &listResp)
	prettyPrint(listResp)

	// 2. Create a fresh conversation
	color.Yellow("\n2. Create Conversation")
	resp, body, err = sendRequest("POST", "/chat/v1/conversations", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var createResp map[string]interface{}
	json.Unmarshal(body, &createResp)
	prettyPrint(createResp)

	var conversationID string
	if data, ok := createResp["data"].(map[string]interface{}); ok {
		if id, ok := data["id"].(string); ok {
			conversationID = id
			fmt.Printf("Created Conversation ID: %s\n", conversationID)
		}
	}

	// 3. Send a chat message
	color.Yellow("\n3. Send Chat")
	chatReq := map[string]interface{}{
		"conversation_id": conversationID,
		"content":         "I had a rough day and could use someone to talk to.",
	}
	resp, body, err = sendRequest("POST", "/chat/v1/send", chatReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var chatResp map[string]interface{}
	json.Unmarshal(body, &chatResp)
	prettyPrint(chatResp)

	// 4. Sending again immediately should hit the busy guard (409)
	color.Yellow("\n4. Send Chat Again (expect 409 while revealing)")
	resp, body, err = sendRequest("POST", "/chat/v1/send", chatReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusConflict {
		color.Green("Status: %s (busy guard works)", resp.Status)
	} else {
		color.Red("Unexpected status: %s", resp.Status)
	}

	// 5. Settings round trip
	color.Yellow("\n5. Patch Settings (theme=purple)")
	resp, body, err = sendRequest("PATCH", "/settings/v1", map[string]interface{}{"theme": "purple"})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var settingsResp map[string]interface{}
	json.Unmarshal(body, &settingsResp)
	prettyPrint(settingsResp)

	// 6. Delete the conversation and check the trash
	color.Yellow("\n6. Delete Conversation")
	resp, _, err = sendRequest("DELETE", "/trash/v1/conversations/"+conversationID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	color.Yellow("\n7. Get Trash Records")
	resp, body, err = sendRequest("GET", "/trash/v1/records", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var trashResp map[string]interface{}
	json.Unmarshal(body, &trashResp)
	prettyPrint(trashResp)

	// 8. Log a mood and read the weekly analytics
	color.Yellow("\n8. Log Mood + Weekly Analytics")
	resp, _, err = sendRequest("POST", "/wellbeing/v1/moods", map[string]interface{}{"mood": 3, "note": "better after talking"})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	resp, body, err = sendRequest("GET", "/wellbeing/v1/analytics/weekly", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var analyticsResp map[string]interface{}
	json.Unmarshal(body, &analyticsResp)
	prettyPrint(analyticsResp)

	color.Cyan("\n✅ Smoke test finished")
}
