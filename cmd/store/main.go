// Command store runs the storefront as an interactive terminal menu:
// list the catalog, show the stock total, or build a multi-line order
// against the live store.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/light-bringer/storefront-service/internal/app/store/contracts"
	"github.com/light-bringer/storefront-service/internal/app/store/domain"
	"github.com/light-bringer/storefront-service/internal/services"
)

func main() {
	serviceOpts, err := services.NewServiceOptions(services.Config{
		Products: services.DefaultProducts(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize store: %v\n", err)
		os.Exit(1)
	}
	defer serviceOpts.Close()

	runMenu(serviceOpts.Catalog, bufio.NewScanner(os.Stdin))
}

func runMenu(catalog contracts.Catalog, in *bufio.Scanner) {
	for {
		printMenu()
		choice := readLine(in, "\nPlease enter your choice by number (1-4): ")

		switch choice {
		case "1":
			listProducts(catalog)
		case "2":
			showTotal(catalog)
		case "3":
			makeOrder(catalog, in)
		case "4":
			fmt.Println("Goodbye")
			return
		default:
			color.Red("\nChoice not available! Type number for available commands!")
		}
	}
}

func printMenu() {
	fmt.Println("\n-----------------")
	fmt.Println("Store Menu")
	fmt.Println("-----------------")
	fmt.Println()
	fmt.Println("1. List all products in store")
	fmt.Println("2. Show total amount in store")
	fmt.Println("3. Make an order")
	fmt.Println("4. Quit")
}

func listProducts(catalog contracts.Catalog) {
	fmt.Println()
	for _, p := range catalog.ActiveProducts() {
		fmt.Println(p.Describe())
	}
}

func showTotal(catalog contracts.Catalog) {
	fmt.Println()
	color.Green(catalog.TotalStockReport())
}

func makeOrder(catalog contracts.Catalog, in *bufio.Scanner) {
	active := catalog.ActiveProducts()
	if len(active) == 0 {
		color.Red("No products available.")
		return
	}

	fmt.Println("\nAvailable Products:")
	for i, p := range active {
		fmt.Printf("%d. %s\n", i+1, p.Describe())
	}

	lines := buildShoppingList(active, in)
	if len(lines) == 0 {
		color.Red("No items in cart.")
		return
	}

	receipt, err := catalog.Order(lines)
	if err != nil {
		color.Red("Error processing order: %v", err)
		return
	}

	fmt.Println()
	for _, line := range receipt.Lines {
		fmt.Printf("%d x %s: %s\n", line.Quantity, line.ProductName, line.LinePrice)
	}
	color.Green("Order placed! Total: %s", receipt.Total)
}

// buildShoppingList collects (product, quantity) pairs until the user
// submits an empty product number.
func buildShoppingList(active []domain.Product, in *bufio.Scanner) []domain.LineItem {
	var lines []domain.LineItem

	for {
		input := readLine(in, "\nEnter the number for the product (or press Enter to finish): ")
		if input == "" {
			fmt.Println("Order complete!")
			fmt.Println("\n-----------")
			return lines
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			color.Red("Error: Please enter a valid product number")
			continue
		}
		if choice < 1 || choice > len(active) {
			color.Red("Error: Number must be between 1 and %d", len(active))
			continue
		}

		product := active[choice-1]
		quantity, ok := readQuantity(product, in)
		if !ok {
			continue
		}

		lines = append(lines, domain.LineItem{Product: product, Quantity: quantity})
		color.Blue("Added %d x %s to your cart", quantity, product.Name())
	}
}

// readQuantity prompts until the user enters a quantity the product
// would accept; the store re-validates the whole batch on order.
func readQuantity(product domain.Product, in *bufio.Scanner) (int64, bool) {
	for {
		input := readLine(in, fmt.Sprintf("What amount of %s do you want? ", product.Name()))

		quantity, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			color.Red("No valid number entered! Enter only integers.")
			continue
		}
		if quantity <= 0 {
			color.Red("Error: Quantity must be at least 1")
			continue
		}

		if limited, ok := product.(*domain.LimitedProduct); ok && quantity > limited.MaxPerOrder() {
			color.Red("Error: Cannot purchase more than %d of %s per order!", limited.MaxPerOrder(), product.Name())
			continue
		}

		if _, unlimited := product.(*domain.DigitalProduct); !unlimited {
			if available := product.Stock(); quantity > available {
				color.Red("Error: Not enough stock. Only %d available", available)
				continue
			}
		}

		return quantity, true
	}
}

func readLine(in *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
