package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"grocerpos/internal/apiclient"
	"grocerpos/internal/catalog"
	"grocerpos/internal/checkout"
	"grocerpos/internal/config"
	"grocerpos/internal/invoice"
	"grocerpos/internal/terminal"
)

// pos is the cashier terminal: the billing screen and the product management
// screen driven from one prompt, talking to the catalog API.
func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[pos] ", log.LstdFlags|log.LUTC)

	client := apiclient.New(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	cache := catalog.NewCache(client, logger)
	checkoutSvc := checkout.New(client, cache, logger)
	renderer := invoice.NewRenderer(cfg.InvoiceDir, cfg.CurrencySymbol)

	cashier := terminal.NewCashier(cache, checkoutSvc, renderer, logger)
	editor := terminal.NewEditor(client, cache, logger)

	ctx := context.Background()
	cashier.LoadProducts(ctx)

	fmt.Println("grocerpos terminal - type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		printNotices(cashier.TakeNotices())
		printNotices(editor.TakeNotices())
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			printHelp()
		case "products":
			cashier.LoadProducts(ctx)
			for _, p := range cashier.Products() {
				fmt.Printf("  %s  %s  %s%v  %v kg in stock\n", p.ID, p.Name, cfg.CurrencySymbol, p.Price, p.Stock)
			}
		case "add":
			if len(args) != 3 {
				fmt.Println("usage: add <product-id> <kg>")
				continue
			}
			kg, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				fmt.Println("bad quantity:", args[2])
				continue
			}
			if err := cashier.SelectProduct(args[1]); err != nil {
				fmt.Println(err)
				continue
			}
			cashier.SetQuantity(kg)
			if err := cashier.ConfirmAdd(); err != nil {
				cashier.CancelSelection()
				fmt.Println(err)
			}
		case "rm":
			if len(args) != 2 {
				fmt.Println("usage: rm <product-id>")
				continue
			}
			cashier.RemoveFromCart(args[1])
		case "cart":
			for _, l := range cashier.CartLines() {
				fmt.Printf("  %s  %s%v x %v\n", l.Name, cfg.CurrencySymbol, l.Price, l.Quantity)
			}
			fmt.Printf("  Total: %s%v\n", cfg.CurrencySymbol, cashier.Total())
		case "customer":
			if len(args) < 3 {
				fmt.Println("usage: customer <name> <phone>")
				continue
			}
			cashier.SetCustomer(strings.Join(args[1:len(args)-1], " "), args[len(args)-1])
		case "checkout":
			if err := cashier.Checkout(ctx); err != nil {
				continue
			}
			fmt.Print(renderer.Render(*cashier.Invoice()))
		case "print":
			path, err := cashier.PrintInvoice()
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("saved", path)
		case "new":
			if len(args) != 4 {
				fmt.Println("usage: new <name> <price> <stock>")
				continue
			}
			price, err1 := strconv.ParseFloat(args[2], 64)
			stock, err2 := strconv.ParseFloat(args[3], 64)
			if err1 != nil || err2 != nil {
				fmt.Println("bad price or stock")
				continue
			}
			editor.BeginCreate()
			editor.SetDraft(terminal.Draft{Name: args[1], Price: price, Stock: stock})
			if err := editor.Save(ctx); err != nil {
				editor.Cancel()
			}
		case "edit":
			if len(args) != 4 {
				fmt.Println("usage: edit <product-id> <price> <stock>")
				continue
			}
			price, err1 := strconv.ParseFloat(args[2], 64)
			stock, err2 := strconv.ParseFloat(args[3], 64)
			if err1 != nil || err2 != nil {
				fmt.Println("bad price or stock")
				continue
			}
			if err := editor.BeginEdit(args[1]); err != nil {
				fmt.Println(err)
				continue
			}
			draft := editor.Draft()
			draft.Price = price
			draft.Stock = stock
			editor.SetDraft(draft)
			if err := editor.Save(ctx); err != nil {
				editor.Cancel()
			}
		case "del":
			if len(args) != 2 {
				fmt.Println("usage: del <product-id>")
				continue
			}
			editor.Delete(ctx, args[1])
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, try 'help'")
		}
	}
}

func printNotices(notices []string) {
	for _, n := range notices {
		fmt.Println("! " + n)
	}
}

func printHelp() {
	fmt.Print(`  products                   reload and list the catalog
  add <product-id> <kg>      add a product to the cart
  rm <product-id>            remove a cart line
  cart                       show the cart and total
  customer <name> <phone>    set customer details
  checkout                   finalize the sale and show the invoice
  print                      save the invoice and start a new sale
  new <name> <price> <stock> create a product
  edit <id> <price> <stock>  update price and stock
  del <product-id>           delete a product
  quit
`)
}
