package main

import "github.com/tanema/gween"

// Action hangs behavior off a running tween: a value sink, finish hooks and
// follow-up tweens queued the moment this one completes.
type Action struct {
	nexts    []func(a *App)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(a *App), 0)
	}
	a.nexts = append(a.nexts,
		func(app *App) {
			app.tweens[t] = action
		})
	return action
}
