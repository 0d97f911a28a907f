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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/hstlab/cspkit/config"
	"github.com/hstlab/cspkit/historydb"
	"github.com/hstlab/cspkit/server"
)

func runServe(args []string, cfg config.Config, db *historydb.DB) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	mqttBroker := fs.String("mqtt", "", "MQTT broker URL, e.g. tcp://localhost:1883")
	mqttRequestTopic := fs.String("mqtt-request-topic", "csp/request", "MQTT topic to receive requests on")
	mqttReplyTopic := fs.String("mqtt-reply-topic", "csp/reply", "MQTT topic to publish replies on")
	wsAddr := fs.String("ws", "", "WebSocket listen address, e.g. :8080")
	watchExpr := fs.String("watch", "", "cron expression for a scheduled refinement recheck")
	watchSpec := fs.String("watch-spec", "", "specification expression for --watch")
	watchImpl := fs.String("watch-impl", "", "implementation expression for --watch")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mqttBroker == "" && *wsAddr == "" {
		return fmt.Errorf("serve: at least one of --mqtt or --ws is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	onResult := func(req server.Request, resp server.Response) {
		verdict := resp.Verdict
		if verdict == "" {
			verdict = fmt.Sprintf("count=%d", resp.Count)
		}
		if resp.Error != "" {
			verdict = "error: " + resp.Error
		}
		logInvocation(db, "serve:"+req.Analysis, req.Expr, verdict)
	}

	errs := make(chan error, 3)

	if *mqttBroker != "" {
		go func() {
			errs <- server.ServeMQTT(ctx, server.MQTTConfig{
				Broker:       *mqttBroker,
				ClientID:     "cspkit-server",
				RequestTopic: *mqttRequestTopic,
				ReplyTopic:   *mqttReplyTopic,
			}, onResult)
		}()
	}

	if *wsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", server.WebSocketHandler(ctx, onResult))
		httpSrv := &http.Server{Addr: *wsAddr, Handler: mux}
		go func() {
			<-ctx.Done()
			httpSrv.Close()
		}()
		go func() {
			err := httpSrv.ListenAndServe()
			if err == http.ErrServerClosed {
				err = nil
			}
			errs <- err
		}()
	}

	if *watchExpr != "" {
		if *watchSpec == "" || *watchImpl == "" {
			return fmt.Errorf("serve: --watch requires --watch-spec and --watch-impl")
		}
		go func() {
			errs <- server.Watch(ctx, *watchExpr, *watchSpec, *watchImpl, db)
		}()
	}

	return <-errs
}
