package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/internal/serialization"
	"github.com/born-ml/micrograd/internal/train"
)

func runTrain(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(w)
	var (
		epochs     = fs.Int("epochs", 200, "number of full-batch epochs")
		lr         = fs.Float64("lr", 0.05, "learning rate (0 selects the optimizer default)")
		optimName  = fs.String("optim", "adam", "optimizer: sgd, momentum or adam")
		lossName   = fs.String("loss", "mse", "loss: mse, bce or hinge")
		hidden     = fs.String("hidden", "8", "comma separated hidden layer sizes")
		activation = fs.String("activation", "tanh", "hidden activation: tanh, relu or linear")
		seed       = fs.Int64("seed", 1, "weight initialization seed")
		logEvery   = fs.Int("log-every", 20, "print progress every N epochs")
		save       = fs.String("save", "", "write a checkpoint to this path")
		jsonOut    = fs.String("json", "", "also export the checkpoint as JSON to this path")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	act, err := nn.ParseActivation(*activation)
	if err != nil {
		return err
	}
	sizes, err := parseSizes(*hidden)
	if err != nil {
		return err
	}
	loss, err := newLoss(*lossName)
	if err != nil {
		return err
	}

	model := nn.NewMLP(2, append(sizes, 1), nn.Config{Activation: act, Seed: *seed})
	opt, err := optim.New(*optimName, model.Parameters(), *lr)
	if err != nil {
		return err
	}
	log.Printf("model %s, %d parameters, optimizer %s (lr=%g)", model, model.NumParameters(), *optimName, opt.GetLR())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	data := xorData(*lossName)
	tr := &train.Trainer{Model: model, Loss: loss, Optimizer: opt}

	start := time.Now()
	hist, err := tr.Fit(ctx, data, train.Config{Epochs: *epochs, LogEvery: *logEvery}, func(epoch int, l float64) {
		fmt.Fprintf(w, "Epoch %4d/%d: Loss=%.6f\n", epoch+1, *epochs, l)
	})
	if err != nil {
		// Keep what was learned so far; an interrupted run still gets saved.
		log.Printf("training interrupted: %v", err)
	}
	if hist == nil {
		return err
	}
	if best, at := hist.Best(); at >= 0 {
		log.Printf("best loss %.6f at epoch %d, mean of last 10 epochs %.6f", best, at+1, hist.Mean(10))
	}

	final, evalErr := tr.Evaluate(data)
	if evalErr != nil {
		return evalErr
	}
	fmt.Fprintf(w, "Final loss %.6f, accuracy %.0f%% (%s)\n",
		final, accuracy(model, data, *lossName)*100, time.Since(start).Round(time.Millisecond))

	if *save == "" && *jsonOut == "" {
		return err
	}

	ckpt := serialization.FromMLP(model).WithOptimizer(*optimName, opt)
	ckpt.Meta.Epoch = len(hist.Losses)
	ckpt.Meta.Step = tr.Steps()
	ckpt.Meta.Loss = final

	if *save != "" {
		if saveErr := serialization.Save(*save, ckpt); saveErr != nil {
			return saveErr
		}
		log.Printf("saved checkpoint to %s", *save)
	}
	if *jsonOut != "" {
		if jsonErr := writeJSON(*jsonOut, ckpt); jsonErr != nil {
			return jsonErr
		}
		log.Printf("exported JSON to %s", *jsonOut)
	}
	return err
}

func writeJSON(path string, ckpt *serialization.Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	if err := serialization.ExportJSON(f, ckpt); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runEval(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(w)
	var (
		load     = fs.String("load", "", "checkpoint to evaluate (required)")
		lossName = fs.String("loss", "mse", "loss the model was trained with: mse, bce or hinge")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *load == "" {
		return fmt.Errorf("eval: -load is required")
	}

	ckpt, err := serialization.Load(*load)
	if err != nil {
		return err
	}
	model, err := ckpt.Restore()
	if err != nil {
		return err
	}
	loss, err := newLoss(*lossName)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Checkpoint: %s\n", *load)
	fmt.Fprintf(w, "   Model: %s (%d parameters)\n", model, model.NumParameters())
	fmt.Fprintf(w, "   Trained: %d epochs, %d steps, loss %.6f\n", ckpt.Meta.Epoch, ckpt.Meta.Step, ckpt.Meta.Loss)
	if ckpt.Optimizer != nil {
		fmt.Fprintf(w, "   Optimizer: %s (lr=%g)\n", ckpt.Optimizer.Type, ckpt.Optimizer.LR)
	}

	data := xorData(*lossName)
	for _, s := range data {
		fmt.Fprintf(w, "   %v -> %+.4f (target %+g)\n", s.X, model.Predict(s.X)[0], s.Y[0])
	}

	tr := &train.Trainer{Model: model, Loss: loss}
	l, err := tr.Evaluate(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Loss %.6f, accuracy %.0f%%\n", l, accuracy(model, data, *lossName)*100)
	return nil
}
