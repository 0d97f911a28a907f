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
	"log"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/hstlab/cspkit/historydb"
)

// Watch re-runs a fixed refinement check on the schedule cronExpr
// describes (standard five/six-field cron syntax), logging every
// result to db. It blocks until ctx is cancelled.
func Watch(ctx context.Context, cronExpr string, spec, impl string, db *historydb.DB) error {
	expr, err := cronexpr.Parse(cronExpr)
	if err != nil {
		return err
	}

	for {
		next := expr.Next(time.Now())
		wait := time.Until(next)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		resp := Analyze(Request{Expr: impl, Spec: spec, Analysis: "refine"})
		verdict := resp.Verdict
		if resp.Error != "" {
			verdict = "error: " + resp.Error
		}
		log.Printf("server: scheduled refinement check: %s", verdict)
		if db != nil {
			if err := db.Log(time.Now(), "watch", impl, verdict); err != nil {
				log.Printf("server: failed to log scheduled check: %s", err)
			}
		}
	}
}
