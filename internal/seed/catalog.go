// Package seed fills an empty database with a small reference catalog.
package seed

import (
	"context"
	"fmt"

	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/repository/unitofwork"
)

type socketSeed struct {
	Brand   string
	Chipset string
	Models  []string
}

var catalog = []socketSeed{
	{Brand: "AMD", Chipset: "AM5", Models: []string{"Ryzen 5 7600X", "Ryzen 7 7800X3D", "Ryzen 9 7950X"}},
	{Brand: "AMD", Chipset: "AM4", Models: []string{"Ryzen 5 5600X", "Ryzen 7 5800X3D"}},
	{Brand: "Intel", Chipset: "LGA1700", Models: []string{"Core i5-13600K", "Core i7-14700K", "Core i9-14900K"}},
}

type Result struct {
	Sockets int
	Cpus    int
	Skipped bool
}

// Catalog inserts every socket and its CPUs in one transaction. It does
// nothing when any socket already exists.
func Catalog(ctx context.Context, uow unitofwork.UnitOfWork) (Result, error) {
	existing, err := uow.SocketRepository().Count(ctx)
	if err != nil {
		return Result{}, err
	}
	if existing > 0 {
		return Result{Skipped: true}, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return Result{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	var res Result
	for _, s := range catalog {
		socket := entity.Socket{Brand: s.Brand, Chipset: s.Chipset}
		if err := uow.SocketRepository().Create(ctx, &socket); err != nil {
			_ = uow.Rollback()
			return Result{}, err
		}
		res.Sockets++

		for _, name := range s.Models {
			socketId := socket.Id
			cpu := entity.Cpu{Brand: s.Brand, Model: name, SocketId: &socketId}
			if err := uow.CpuRepository().Create(ctx, &cpu); err != nil {
				_ = uow.Rollback()
				return Result{}, err
			}
			res.Cpus++
		}
	}

	if err := uow.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit seed transaction: %w", err)
	}
	return res, nil
}
