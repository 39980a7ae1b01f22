package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jelllllllllll/F1s/internal/config"
	"github.com/jelllllllllll/F1s/internal/domain/model"
	"github.com/jelllllllllll/F1s/internal/logger"
	"github.com/jelllllllllll/F1s/internal/storefront"
	"github.com/jelllllllllll/F1s/internal/storefront/cart"
	"github.com/jelllllllllll/F1s/internal/storefront/catalog"
	"github.com/jelllllllllll/F1s/internal/storefront/checkout"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogMode, cfg.LogFile)

	stateDir := cfg.CartStateDir
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".f1shop")
	}

	ctx := context.Background()
	api := storefront.NewAPIClient(cfg.APIBaseURL)

	state, err := storefront.NewState(ctx, api, cfg.PublicDir, cart.NewFileStore(stateDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load catalog: %v\n", err)
		os.Exit(1)
	}

	// カートバッジ相当。変更イベントで件数を出す。
	_ = state.Bus.Subscribe(cart.TopicChanged, func(count int64) {
		fmt.Printf("[cart: %d items]\n", count)
	})

	flow := checkout.NewFlow(state.Cart, api)

	fmt.Printf("F1 Marketplace — %d products loaded. Type 'help'.\n", len(state.Products))
	repl(ctx, state, flow)
}

func repl(ctx context.Context, state *storefront.State, flow *checkout.Flow) {
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			fmt.Println("catalog [sort-key]   list products (price-low|price-high|newest)")
			fmt.Println("filter <channel>     filter by vendor channel (official|creator)")
			fmt.Println("show <id>            product detail")
			fmt.Println("add <id> [qty]       add to cart")
			fmt.Println("cart                 show cart")
			fmt.Println("qty <item-id> <n>    change quantity")
			fmt.Println("rm <item-id>         remove cart item")
			fmt.Println("checkout             place the order")
			fmt.Println("quit")
		case "catalog":
			key := ""
			if len(args) > 1 {
				key = args[1]
			}
			printProducts(catalog.Sort(state.Products, key))
		case "filter":
			if len(args) < 2 {
				fmt.Println("usage: filter <official|creator>")
				continue
			}
			printProducts(catalog.Filter(state.Products, catalog.Facets{Channels: args[1:]}))
		case "show":
			if len(args) < 2 {
				fmt.Println("usage: show <id>")
				continue
			}
			showProduct(state, args[1])
		case "add":
			if len(args) < 2 {
				fmt.Println("usage: add <id> [qty]")
				continue
			}
			qty := int64(1)
			if len(args) > 2 {
				qty = cast.ToInt64(args[2])
			}
			if err := state.Cart.Add(args[1], qty); err != nil {
				fmt.Println("error:", err)
			}
		case "cart":
			printCart(state)
		case "qty":
			if len(args) < 3 {
				fmt.Println("usage: qty <item-id> <n>")
				continue
			}
			if err := state.Cart.SetQuantity(args[1], cast.ToInt64(args[2])); err != nil {
				fmt.Println("error:", err)
			}
		case "rm":
			if len(args) < 2 {
				fmt.Println("usage: rm <item-id>")
				continue
			}
			if err := state.Cart.Remove(args[1]); err != nil {
				fmt.Println("error:", err)
			}
		case "checkout":
			runCheckout(ctx, sc, state, flow)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, try 'help'")
		}
	}
}

func printProducts(products []model.Product) {
	for _, p := range products {
		vendor := p.Team
		if p.VendorType != "official" {
			vendor = p.CreatorName
		}
		fmt.Printf("%-22s %-40s %8s %s  [%s]\n",
			p.Code, p.Title, "$"+p.Price.StringFixed(2), vendor,
			catalog.StockStatus(p.StockTotal))
	}
	fmt.Printf("%d products\n", len(products))
}

func showProduct(state *storefront.State, code string) {
	p, ok := state.FindProduct(code)
	if !ok {
		fmt.Println("product not found")
		return
	}
	fmt.Printf("%s\n%s\nSKU: %s\n$%s %s — %s\n",
		p.Title, p.Description, p.SKU,
		p.Price.StringFixed(2), p.Currency, catalog.StockStatus(p.StockTotal))
	for _, v := range p.Variants {
		fmt.Printf("  size %-4s stock %d\n", v.Label, v.Stock)
	}
	if related := catalog.Related(state.Products, p, 4); len(related) > 0 {
		fmt.Println("related:")
		for _, r := range related {
			fmt.Printf("  %s (%s)\n", r.Title, r.Code)
		}
	}
}

func printCart(state *storefront.State) {
	items := state.Cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, it := range items {
		title := "(no longer available)"
		line := "0.00"
		if p, ok := state.FindProduct(it.ProductID); ok {
			title = p.Title
			line = p.Price.Mul(decimal.NewFromInt(it.Quantity)).StringFixed(2)
		}
		fmt.Printf("%s  x%d  $%s  %s\n", it.ID, it.Quantity, line, title)
	}

	sum := checkout.Summarize(state.Cart.Total())
	fmt.Printf("subtotal $%s  shipping $%s  tax $%s  total $%s\n",
		sum.Subtotal.StringFixed(2), sum.Shipping.StringFixed(2),
		sum.Tax.StringFixed(2), sum.Total.StringFixed(2))
}

func runCheckout(ctx context.Context, sc *bufio.Scanner, state *storefront.State, flow *checkout.Flow) {
	if state.Cart.Count() == 0 {
		fmt.Println("cart is empty")
		return
	}

	form := checkout.Form{
		Email:          prompt(sc, "email"),
		Phone:          prompt(sc, "phone"),
		FullName:       prompt(sc, "full name"),
		Address:        prompt(sc, "address"),
		City:           prompt(sc, "city"),
		Zip:            prompt(sc, "zip"),
		State:          prompt(sc, "state (optional)"),
		Country:        prompt(sc, "country"),
		PaymentMethod:  prompt(sc, "payment method"),
		ShippingMethod: prompt(sc, "shipping method (optional)"),
	}

	// 入力中の警告に相当。提出は止めない。
	if !checkout.FieldValid("email", form.Email) {
		fmt.Println("note: email looks invalid")
	}

	conf, err := flow.Submit(ctx, form)
	if err != nil {
		fmt.Println("checkout failed:", err)
		return
	}
	fmt.Printf("order placed!\n  order number: %s\n  tracking: %s\n  total paid: $%s\n",
		conf.OrderNumber, conf.TrackingCode, conf.TotalPaid.StringFixed(2))
}

func prompt(sc *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}
