package cli

import (
	"context"
	"flag"
	"time"

	"github.com/solmax/tgshop/internal/client/view"
)

// thumbRotateInterval — период смены изображения на карточках
const thumbRotateInterval = 5 * time.Second

// runWatch держит витрину живой: фоновый опрос каталога, инкрементальные
// патчи в вывод, ротация изображений. Работает до отмены контекста.
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	rotate := fs.Bool("rotate", true, "rotate card thumbnails")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// патчи подписываются до загрузки, чтобы увидеть и первичные add
	c.session.SetPatchSink(func(patches []view.Patch) {
		for _, p := range patches {
			switch p.Kind {
			case view.PatchAdd:
				c.io.Printf("+ card %s at %d\n", p.ProductID, p.Index)
			case view.PatchRemove:
				c.io.Printf("- card %s\n", p.ProductID)
			case view.PatchMove:
				c.io.Printf("~ card %s -> %d\n", p.ProductID, p.Index)
			case view.PatchSet:
				c.io.Printf("* card %s: %s\n", p.ProductID, p.Field)
			}
		}
	})

	if err := c.bootSession(ctx); err != nil {
		return err
	}
	defer c.session.Close()

	c.io.Printf("Следим за витриной (%d карточек), Ctrl+C для выхода.\n", len(c.session.Cards()))

	var rotator *time.Ticker
	if *rotate {
		rotator = time.NewTicker(thumbRotateInterval)
		defer rotator.Stop()
	} else {
		rotator = time.NewTicker(time.Hour)
		rotator.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			c.io.Println("\nВыход.")
			return nil
		case <-rotator.C:
			c.session.AdvanceThumbs()
		}
	}
}
