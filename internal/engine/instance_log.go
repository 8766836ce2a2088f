package engine

import (
	"fmt"

	"odyssey-engine/internal/domain"
	"odyssey-engine/internal/ecs"
	"odyssey-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

// LogEntry — одна строка журнала игры.
type LogEntry struct {
	ID   string `json:"id"`
	Turn int    `json:"turn"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// AddLog добавляет лог в историю игры
func (g *Game) AddLog(text, logType string) {
	g.Logs = append(g.Logs, LogEntry{
		ID:   fmt.Sprintf("%d_%d", g.turn, len(g.Logs)),
		Turn: g.turn,
		Text: text,
		Type: logType,
	})
	if limit := g.Config.LogLimit; limit > 0 && len(g.Logs) > limit {
		g.Logs = g.Logs[len(g.Logs)-limit:]
	}
	logger.Log.WithFields(logrus.Fields{
		"shard":     g.Config.ShardId,
		"component": "game_log",
		"log_type":  logType,
		"turn":      g.turn,
	}).Debug(text)
}

// logEvent пишет в журнал только заметные события.
func (g *Game) logEvent(ev domain.ActionEvent) {
	switch ev.Kind {
	case domain.EventTravel:
		g.AddLog(fmt.Sprintf("%s moves to %s", g.describe(ev), ev.Target), "MOVE")
	case domain.EventMelee:
		g.AddLog(fmt.Sprintf("%s strikes %s for %d", g.describe(ev), ev.Target, ev.Value), "COMBAT")
	}
}

func (g *Game) describe(ev domain.ActionEvent) string {
	if name, ok := ecs.Get[domain.Name](g.World, ev.Entity); ok {
		return name.Value
	}
	return ev.Entity.String()
}
