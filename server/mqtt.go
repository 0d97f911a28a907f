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
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/hstlab/cspkit/util"
)

// MQTTConfig configures the broker connection and topic pair an MQTT
// client talks to.
type MQTTConfig struct {
	Broker       string
	ClientID     string
	RequestTopic string
	ReplyTopic   string
	KeepAlive    time.Duration
}

// ServeMQTT connects to a broker and answers one Request per message
// received on cfg.RequestTopic, publishing the Response to
// cfg.ReplyTopic. It blocks until ctx is cancelled.
func ServeMQTT(ctx context.Context, cfg MQTTConfig, onResult func(Request, Response)) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.KeepAlive > 0 {
		opts.SetKeepAlive(cfg.KeepAlive)
	}
	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		log.Printf("server: MQTT connection lost: %s", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(100)

	handler := func(c mqtt.Client, msg mqtt.Message) {
		var req Request
		if err := json.Unmarshal(msg.Payload(), &req); err != nil {
			log.Printf("server: bad request payload: %s", err)
			return
		}
		util.Logf("server: MQTT request on %s: %+v", cfg.RequestTopic, req)
		resp := Analyze(req)
		if onResult != nil {
			onResult(req, resp)
		}
		js, err := json.Marshal(&resp)
		if err != nil {
			log.Printf("server: failed to marshal response: %s", err)
			return
		}
		token := c.Publish(cfg.ReplyTopic, 1, false, js)
		token.Wait()
		if token.Error() != nil {
			log.Printf("server: publish error: %s", token.Error())
		}
	}

	if token := client.Subscribe(cfg.RequestTopic, 1, handler); token.Wait() && token.Error() != nil {
		return token.Error()
	}

	<-ctx.Done()
	return nil
}
