// Command tollway builds a synthetic road grid and prints the best route
// between two intersections.
//
// Scenario:
//
//	A rows×cols grid of intersections, spacing units apart. Every road is a
//	little longer than the straight line (detour), and some roads charge a
//	toll. A driver holding k coupons may skip k tolls.
//
//	  0,0 ──── 0,1 ──$─ 0,2
//	   │        │        │
//	   $        │        │
//	   │        │        │
//	  1,0 ──── 1,1 ──── 1,2
//
// Usage:
//
//	tollway [-config file.yaml] [-mode bfs|dijkstra|astar|tollway]
//	        [-from r,c | -from-xy x,y] [-to r,c | -to-xy x,y]
//	        [-coupons n|unlimited] [-heuristic name] [-matrix]
//
// Flags override TOLLWAY_* variables, which override the config file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tollway:", err)
		os.Exit(1)
	}
}
