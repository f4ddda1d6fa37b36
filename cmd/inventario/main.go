// inventario es el front de línea de comandos del ledger de inventario.
// Cada subcomando llama únicamente al caso de uso y muestra resultados
// legibles; ante errores imprime el mensaje y termina con código 1.
//
// Uso: inventario <comando> [argumentos]
//
// Comandos: add, get, update, delete, list, search, add-stock,
// remove-stock, adjust-stock, transactions, report.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/jsonstore"
	"github.com/jhoicas/inventario-ledger/pkg/config"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "error"})

	if err := os.MkdirAll(cfg.Store.Dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: crear directorio de datos: %v\n", err)
		os.Exit(1)
	}

	// A diferencia de la API, la CLI conserva el comportamiento original:
	// ante un archivo malformado advierte y continúa con el estado vacío.
	productStore, err := jsonstore.NewProductStore(cfg.Store.ProductsPath(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Advertencia: %v; se continúa con el inventario vacío\n", err)
	}
	txStore, err := jsonstore.NewTransactionStore(cfg.Store.TransactionsPath(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Advertencia: %v; se continúa con el ledger vacío\n", err)
	}

	uc := inventory.NewUseCase(productStore, txStore)

	cmd, args := os.Args[1], os.Args[2:]
	if err := run(uc, cfg, cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(uc *inventory.UseCase, cfg *config.Config, cmd string, args []string) error {
	switch cmd {
	case "add":
		return cmdAdd(uc, args)
	case "get":
		return cmdGet(uc, args)
	case "update":
		return cmdUpdate(uc, args)
	case "delete":
		return cmdDelete(uc, args)
	case "list":
		return cmdList(uc, args)
	case "search":
		return cmdSearch(uc, args)
	case "add-stock":
		return cmdAddStock(uc, args)
	case "remove-stock":
		return cmdRemoveStock(uc, args)
	case "adjust-stock":
		return cmdAdjustStock(uc, args)
	case "transactions":
		return cmdTransactions(uc, args)
	case "report":
		return cmdReport(uc, cfg, args)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("comando desconocido: %s", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Uso: inventario <comando> [argumentos]

Comandos:
  add           -name -description -category -price -quantity
  get           <sku>
  update        <sku> [-name] [-description] [-category] [-price]
  delete        <sku>
  list          [-category C] [-status S]
  search        <texto>
  add-stock     <sku> -quantity N [-notes]
  remove-stock  <sku> -quantity N [-notes]
  adjust-stock  <sku> -quantity N [-notes]
  transactions  [-sku SKU] [-type T] [-delete ID]
  report        value | low-stock [-threshold N] | out-of-stock | transactions

Categorías: ELECTRONICS, CLOTHING, FOOD, BOOKS, TOYS, HOME, OFFICE, OTHER
Estados:    IN_STOCK, LOW_STOCK, OUT_OF_STOCK, DISCONTINUED`)
}

func cmdAdd(uc *inventory.UseCase, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "nombre del producto")
	description := fs.String("description", "", "descripción")
	category := fs.String("category", "", "categoría")
	price := fs.String("price", "", "precio unitario")
	quantity := fs.Int("quantity", 0, "cantidad inicial")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *category == "" || *price == "" {
		return errors.New("add requiere -name, -category y -price")
	}
	p, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("precio inválido: %q", *price)
	}

	out, err := uc.AddProduct(dto.CreateProductRequest{
		Name:          *name,
		Description:   *description,
		Category:      *category,
		Price:         p,
		StockQuantity: *quantity,
	})
	if err != nil {
		return err
	}
	fmt.Println("\nProducto añadido correctamente:")
	printProduct(out)
	return nil
}

func cmdGet(uc *inventory.UseCase, args []string) error {
	if len(args) < 1 {
		return errors.New("get requiere un SKU")
	}
	out, err := uc.GetProduct(args[0])
	if err != nil {
		return err
	}
	if out == nil {
		return fmt.Errorf("producto con SKU %s no encontrado", args[0])
	}
	printProduct(out)
	return nil
}

func cmdUpdate(uc *inventory.UseCase, args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return errors.New("update requiere un SKU")
	}
	sku := args[0]
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", "", "nombre del producto")
	description := fs.String("description", "", "descripción")
	category := fs.String("category", "", "categoría")
	price := fs.String("price", "", "precio unitario")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var in dto.UpdateProductRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			in.Name = name
		case "description":
			in.Description = description
		case "category":
			in.Category = category
		}
	})
	if *price != "" {
		p, err := decimal.NewFromString(*price)
		if err != nil {
			return fmt.Errorf("precio inválido: %q", *price)
		}
		in.Price = &p
	}

	out, err := uc.UpdateProduct(sku, in)
	if err != nil {
		return err
	}
	fmt.Println("\nProducto actualizado correctamente:")
	printProduct(out)
	return nil
}

func cmdDelete(uc *inventory.UseCase, args []string) error {
	if len(args) < 1 {
		return errors.New("delete requiere un SKU")
	}
	if err := uc.DeleteProduct(args[0]); err != nil {
		return err
	}
	fmt.Printf("Producto %s eliminado correctamente\n", args[0])
	return nil
}

func cmdList(uc *inventory.UseCase, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", "", "filtrar por categoría")
	status := fs.String("status", "", "filtrar por estado")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		out *dto.ProductListResponse
		err error
	)
	switch {
	case *category != "":
		out, err = uc.ProductsByCategory(*category)
	case *status != "":
		out, err = uc.ProductsByStatus(*status)
	default:
		out, err = uc.ListProducts()
	}
	if err != nil {
		return err
	}
	printProductTable(out)
	return nil
}

func cmdSearch(uc *inventory.UseCase, args []string) error {
	if len(args) < 1 {
		return errors.New("search requiere un texto de búsqueda")
	}
	out, err := uc.SearchProducts(strings.Join(args, " "))
	if err != nil {
		return err
	}
	printProductTable(out)
	return nil
}

func parseStockArgs(name string, args []string) (sku string, quantity int, notes string, err error) {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return "", 0, "", fmt.Errorf("%s requiere un SKU", name)
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	q := fs.Int("quantity", 0, "cantidad")
	n := fs.String("notes", "", "notas de la transacción")
	if err := fs.Parse(args[1:]); err != nil {
		return "", 0, "", err
	}
	return args[0], *q, *n, nil
}

func cmdAddStock(uc *inventory.UseCase, args []string) error {
	sku, quantity, notes, err := parseStockArgs("add-stock", args)
	if err != nil {
		return err
	}
	out, err := uc.AddStock(sku, quantity, notes)
	if err != nil {
		return err
	}
	fmt.Printf("Stock actualizado. Nuevo stock: %d\n", out.StockQuantity)
	return nil
}

func cmdRemoveStock(uc *inventory.UseCase, args []string) error {
	sku, quantity, notes, err := parseStockArgs("remove-stock", args)
	if err != nil {
		return err
	}
	out, err := uc.RemoveStock(sku, quantity, notes)
	if err != nil {
		return err
	}
	fmt.Printf("Stock actualizado. Nuevo stock: %d\n", out.StockQuantity)
	return nil
}

func cmdAdjustStock(uc *inventory.UseCase, args []string) error {
	sku, quantity, notes, err := parseStockArgs("adjust-stock", args)
	if err != nil {
		return err
	}
	out, err := uc.AdjustStock(sku, quantity, notes)
	if err != nil {
		return err
	}
	fmt.Printf("Stock ajustado a %d\n", out.StockQuantity)
	return nil
}

func cmdTransactions(uc *inventory.UseCase, args []string) error {
	fs := flag.NewFlagSet("transactions", flag.ExitOnError)
	sku := fs.String("sku", "", "filtrar por SKU referenciado")
	txType := fs.String("type", "", "filtrar por tipo (purchase, sale, adjustment)")
	deleteID := fs.String("delete", "", "eliminar transacción por id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *deleteID != "" {
		if err := uc.DeleteTransaction(*deleteID); err != nil {
			return err
		}
		fmt.Printf("Transacción %s eliminada correctamente\n", *deleteID)
		return nil
	}

	var (
		out *dto.TransactionListResponse
		err error
	)
	switch {
	case *sku != "":
		out, err = uc.ProductTransactions(*sku)
	case *txType != "":
		out, err = uc.TransactionsByType(*txType)
	default:
		out, err = uc.ListTransactions()
	}
	if err != nil {
		return err
	}
	printTransactionTable(out)
	return nil
}

func cmdReport(uc *inventory.UseCase, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("report requiere un tipo: value, low-stock, out-of-stock o transactions")
	}
	switch args[0] {
	case "value":
		out, err := uc.InventoryValue()
		if err != nil {
			return err
		}
		fmt.Printf("\nValor total del inventario: %s\n\nPor categoría:\n", out.Total.StringFixed(2))
		names := make([]string, 0, len(out.ByCategory))
		for name := range out.ByCategory {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-12s %s\n", name, out.ByCategory[name].StringFixed(2))
		}
		return nil
	case "low-stock":
		fs := flag.NewFlagSet("low-stock", flag.ExitOnError)
		threshold := fs.Int("threshold", cfg.Inventory.LowStockThreshold, "umbral de stock bajo")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		out, err := uc.LowStock(*threshold)
		if err != nil {
			return err
		}
		printProductTable(out)
		return nil
	case "out-of-stock":
		out, err := uc.OutOfStock()
		if err != nil {
			return err
		}
		printProductTable(out)
		return nil
	case "transactions":
		out, err := uc.TransactionSummary()
		if err != nil {
			return err
		}
		fmt.Printf("\nResumen de transacciones:\n  purchase:   %d\n  sale:       %d\n  adjustment: %d\n",
			out.Purchase, out.Sale, out.Adjustment)
		return nil
	default:
		return fmt.Errorf("reporte desconocido: %s", args[0])
	}
}

func printProduct(p *dto.ProductResponse) {
	fmt.Printf("  SKU:         %s\n", p.SKU)
	fmt.Printf("  Nombre:      %s\n", p.Name)
	fmt.Printf("  Descripción: %s\n", p.Description)
	fmt.Printf("  Categoría:   %s\n", p.Category)
	fmt.Printf("  Precio:      %s\n", p.Price.StringFixed(2))
	fmt.Printf("  Stock:       %d\n", p.StockQuantity)
	fmt.Printf("  Estado:      %s\n", p.Status)
	fmt.Printf("  Creado:      %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Actualizado: %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func printProductTable(list *dto.ProductListResponse) {
	if list.Total == 0 {
		fmt.Println("No se encontraron productos")
		return
	}
	items := make([]dto.ProductResponse, len(list.Items))
	copy(items, list.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].SKU < items[j].SKU })

	fmt.Printf("%-10s %-25s %-12s %10s %7s %-13s\n", "SKU", "NOMBRE", "CATEGORÍA", "PRECIO", "STOCK", "ESTADO")
	for _, p := range items {
		name := p.Name
		if len(name) > 25 {
			name = name[:22] + "..."
		}
		fmt.Printf("%-10s %-25s %-12s %10s %7d %-13s\n",
			p.SKU, name, p.Category, p.Price.StringFixed(2), p.StockQuantity, p.Status)
	}
	fmt.Printf("\nTotal: %d producto(s)\n", list.Total)
}

func printTransactionTable(list *dto.TransactionListResponse) {
	if list.Total == 0 {
		fmt.Println("No se encontraron transacciones")
		return
	}
	items := make([]dto.TransactionResponse, len(list.Items))
	copy(items, list.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].Timestamp.Before(items[j].Timestamp) })

	fmt.Printf("%-36s %-10s %-11s %9s  %-19s %s\n", "ID", "SKU", "TIPO", "CANTIDAD", "FECHA", "NOTAS")
	for _, tx := range items {
		fmt.Printf("%-36s %-10s %-11s %+9d  %-19s %s\n",
			tx.TransactionID, tx.ProductSKU, tx.Type, tx.Quantity,
			tx.Timestamp.Format("2006-01-02 15:04:05"), tx.Notes)
	}
	fmt.Printf("\nTotal: %d transacción(es)\n", list.Total)
}
