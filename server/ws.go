/* Copyright 2024 the cspkit authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/hstlab/cspkit/util"
)

var upgrader = websocket.Upgrader{}

// WebSocketHandler returns an http.HandlerFunc that upgrades each
// connection and answers one Request per text message with one
// Response, until the client disconnects or ctx is cancelled.
func WebSocketHandler(ctx context.Context, onResult func(Request, Response)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("server: upgrade error: %s", err)
			return
		}
		defer c.Close()

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			_, message, err := c.ReadMessage()
			if err != nil {
				log.Printf("server: read error: %s", err)
				return
			}

			var req Request
			if err := json.Unmarshal(message, &req); err != nil {
				writeError(c, err)
				continue
			}

			util.Logf("server: WebSocket request: %+v", req)
			resp := Analyze(req)
			if onResult != nil {
				onResult(req, resp)
			}
			js, err := json.Marshal(&resp)
			if err != nil {
				log.Printf("server: failed to marshal response: %s", err)
				continue
			}
			if err := c.WriteMessage(websocket.TextMessage, js); err != nil {
				log.Printf("server: write error: %s", err)
				return
			}
		}
	}
}

func writeError(c *websocket.Conn, err error) {
	resp := Response{Error: err.Error()}
	js, merr := json.Marshal(&resp)
	if merr != nil {
		log.Printf("server: failed to marshal error response: %s", merr)
		return
	}
	if werr := c.WriteMessage(websocket.TextMessage, js); werr != nil {
		log.Printf("server: write error: %s", werr)
	}
}
