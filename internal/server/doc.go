// Package server shares one color between WebSocket clients.
//
// Every connected client gets its own picker session, so each keeps its own
// displayed field texts. Input events from any client update the shared
// color exactly once; afterwards every client's fields are synchronized
// against the new color and each client is sent a state message listing
// only the fields whose text was overwritten.
//
// # Endpoints
//
//   - /ws: WebSocket endpoint speaking the JSON messages below
//   - /metrics: Prometheus metrics
//   - /healthz: returns "ok"
//
// # Messages
//
// Client to server:
//
//	{"type":"edit","field":"component0","text":"12.5"}
//	{"type":"space","space":"hsl"}
//	{"type":"drag","axis":"hue","value":0.5}
//
// Server to client:
//
//	{"type":"state","space":"rgb","components":[255,0,0],"hsv":[0,100,100],
//	 "hex":"ff0000","labels":["R","G","B"],"units":["","",""],
//	 "fields":{"component1":"0"}}
//	{"type":"error","error":"unknown field: \"alpha\""}
//
// The first state message after connecting carries the client id and
// every field.
//
// # Usage Example
//
//	srv := server.New(server.Config{
//	    Addr:      ":7878",
//	    Initial:   settings.Color(),
//	    Precision: settings.Precision,
//	    RateLimit: settings.Server.RateLimit,
//	}, metrics.NewManager())
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
