package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"deckgrip/internal/deck"
	"deckgrip/internal/domain"
	"deckgrip/internal/eventbus"
	"deckgrip/internal/presentation"
	"deckgrip/internal/storage"
	"deckgrip/internal/ui"
	"deckgrip/internal/ui/input"
)

func (a *app) runPresent(cmd *cobra.Command, args []string) error {
	if err := a.setup(); err != nil {
		return err
	}
	path, err := a.resolveDeck(cmd.Context(), args)
	if err != nil {
		return err
	}
	d, err := deck.Load(path)
	if err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	log := a.logger.With(zap.String("deck", path))

	kv, err := a.openKV()
	if err != nil {
		return err
	}
	defer kv.Close()

	bus := eventbus.New(log)
	defer bus.Close()

	display := ui.NewTerminalDisplay(domain.ThemeDark)
	store := presentation.NewStore(presentation.Options{
		Display:   display,
		Persister: storage.NewSnapshotStore(kv),
		Bus:       bus,
		Logger:    log,
	})
	display.ApplyTheme(store.Settings().Theme)

	model := ui.NewModel(ui.Options{
		Store:   store,
		Deck:    d,
		Display: display,
		Input: input.Options{
			MinSwipeDistance:    a.cfg.Input.MinSwipeDistance,
			MaxVerticalDistance: a.cfg.Input.MaxVerticalDistance,
			WheelCooldown:       a.cfg.Input.WheelCooldown,
		},
		Logger:            log,
		EstimatedDuration: a.cfg.Timing.EstimatedDuration,
		StartPresenter:    a.cfg.UI.StartPresenter,
		AutoStart:         a.cfg.UI.AutoStart,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	var watcher *deck.Watcher
	if a.cfg.Deck.Watch {
		watcher, err = deck.NewWatcher(path, d, bus, log)
		if err != nil {
			log.Warn("live reload disabled", zap.Error(err))
			watcher = nil
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// events reach the program through a buffered channel so a slow UI
	// never blocks the bus
	events := make(chan tea.Msg, 100)
	forward := func(msg tea.Msg) {
		select {
		case events <- msg:
		default:
			log.Warn("event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventDeckReloaded, func(e eventbus.DomainEvent) {
		ev, ok := e.(domain.DeckReloadedEvent)
		if !ok || watcher == nil {
			return
		}
		forward(ui.DeckReloadedMsg{Deck: watcher.Latest(), Err: ev.Err})
	})
	for _, t := range []eventbus.EventType{
		eventbus.EventPersistFailed,
		eventbus.EventPresentationStarted,
		eventbus.EventPresentationReset,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			forward(ui.EventMsg{Event: e})
		})
	}
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(domain.SlideChangedEvent); ok {
			log.Debug("slide changed", zap.Int("from", ev.From), zap.Int("to", ev.To), zap.Stringer("direction", ev.Direction))
		}
	})

	g, gctx := errgroup.WithContext(ctx)
	if watcher != nil {
		g.Go(func() error {
			if err := watcher.Run(gctx); err != nil {
				log.Warn("live reload stopped", zap.Error(err))
			}
			return nil
		})
	}
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case msg := <-events:
				p.Send(msg)
			}
		}
	})
	g.Go(func() error {
		defer cancel()
		log.Info("presenting", zap.Int("slides", d.Len()))
		_, err := p.Run()
		return err
	})

	err = g.Wait()
	log.Info("presentation closed", zap.Error(err))
	return err
}
