package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

const (
	selectOrders = `SELECT id, user_id, status, total_amount, created_at, updated_at FROM orders`

	insertOrder = `INSERT INTO orders (user_id, status, total_amount) VALUES ($1, $2, $3)
                   RETURNING id, created_at, updated_at`
	insertOrderItem = `INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
                       VALUES ($1, $2, $3, $4) RETURNING id`
	insertShippingAddress = `INSERT INTO shipping_addresses (order_id, full_name, street, city, postal_code, country, phone)
                             VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	insertStatusHistory = `INSERT INTO order_status_history (order_id, status, note) VALUES ($1, $2, $3)
                           RETURNING id, created_at`

	selectOrderItems = `SELECT id, order_id, product_id, quantity, price_at_purchase
                        FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	selectShippingAddresses = `SELECT id, order_id, full_name, street, city, postal_code, country, phone
                               FROM shipping_addresses WHERE order_id = ANY($1)`
	selectStatusHistory = `SELECT id, order_id, status, note, created_at
                           FROM order_status_history WHERE order_id = ANY($1) ORDER BY created_at, id`
)

func amountOf(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

// Create persists the order, its lines, the optional address and the initial history entry atomically.
func (r *orderRepository) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	order := &model.Order{
		UserID:      in.UserID,
		Status:      model.OrderStatusPending,
		TotalAmount: amountOf(in.TotalAmount),
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertOrder, order.UserID, order.Status, order.TotalAmount).
			Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		order.Items = make([]model.OrderItem, 0, len(in.Items))
		for _, item := range in.Items {
			line := model.OrderItem{
				OrderID:         order.ID,
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				PriceAtPurchase: amountOf(item.Price),
			}
			if err := tx.QueryRow(ctx, insertOrderItem, line.OrderID, line.ProductID, line.Quantity, line.PriceAtPurchase).
				Scan(&line.ID); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
			order.Items = append(order.Items, line)
		}

		if addr := in.ShippingAddress; addr != nil {
			shipping := &model.ShippingAddress{
				OrderID:    order.ID,
				FullName:   addr.FullName,
				Street:     addr.Street,
				City:       addr.City,
				PostalCode: addr.PostalCode,
				Country:    addr.Country,
				Phone:      addr.Phone,
			}
			if err := tx.QueryRow(ctx, insertShippingAddress, shipping.OrderID, shipping.FullName, shipping.Street,
				shipping.City, shipping.PostalCode, shipping.Country, shipping.Phone).Scan(&shipping.ID); err != nil {
				return fmt.Errorf("insert shipping address: %w", err)
			}
			order.ShippingAddress = shipping
		}

		note := model.OrderCreatedNote
		entry, err := appendHistory(ctx, tx, order.ID, order.Status, &note)
		if err != nil {
			return err
		}
		order.StatusHistory = []model.OrderStatusHistory{entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func appendHistory(ctx context.Context, q querier, orderID int64, status model.OrderStatus, note *string) (model.OrderStatusHistory, error) {
	entry := model.OrderStatusHistory{OrderID: orderID, Status: status, Note: note}
	if err := q.QueryRow(ctx, insertStatusHistory, orderID, status, note).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return entry, fmt.Errorf("insert status history: %w", err)
	}
	return entry, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return r.get(ctx, r.storage.pool, id)
}

func (r *orderRepository) get(ctx context.Context, q querier, id int64) (*model.Order, error) {
	var o model.Order
	err := q.QueryRow(ctx, selectOrders+` WHERE id=$1`, id).
		Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	orders := []model.Order{o}
	if err := attachChildren(ctx, q, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return r.list(ctx, selectOrders+` WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, selectOrders+` ORDER BY created_at DESC, id DESC`)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	orders, err := scanOrders(ctx, r.storage.pool, query, args...)
	if err != nil {
		return nil, err
	}
	if err := attachChildren(ctx, r.storage.pool, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanOrders(ctx context.Context, q querier, query string, args ...any) ([]model.Order, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// attachChildren loads items, addresses and history for all orders with one query per child table.
func attachChildren(ctx context.Context, q querier, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Items = make([]model.OrderItem, 0)
		orders[i].StatusHistory = make([]model.OrderStatusHistory, 0)
	}

	if err := attachItems(ctx, q, ids, index, orders); err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	if err := attachAddresses(ctx, q, ids, index, orders); err != nil {
		return fmt.Errorf("load shipping addresses: %w", err)
	}
	if err := attachHistory(ctx, q, ids, index, orders); err != nil {
		return fmt.Errorf("load status history: %w", err)
	}
	return nil
}

func attachItems(ctx context.Context, q querier, ids []int64, index map[int64]int, orders []model.Order) error {
	rows, err := q.Query(ctx, selectOrderItems, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceAtPurchase); err != nil {
			return err
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}

func attachAddresses(ctx context.Context, q querier, ids []int64, index map[int64]int, orders []model.Order) error {
	rows, err := q.Query(ctx, selectShippingAddresses, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var addr model.ShippingAddress
		if err := rows.Scan(&addr.ID, &addr.OrderID, &addr.FullName, &addr.Street, &addr.City,
			&addr.PostalCode, &addr.Country, &addr.Phone); err != nil {
			return err
		}
		if i, ok := index[addr.OrderID]; ok {
			orders[i].ShippingAddress = &addr
		}
	}
	return rows.Err()
}

func attachHistory(ctx context.Context, q querier, ids []int64, index map[int64]int, orders []model.Order) error {
	rows, err := q.Query(ctx, selectStatusHistory, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entry model.OrderStatusHistory
		if err := rows.Scan(&entry.ID, &entry.OrderID, &entry.Status, &entry.Note, &entry.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[entry.OrderID]; ok {
			orders[i].StatusHistory = append(orders[i].StatusHistory, entry)
		}
	}
	return rows.Err()
}

// UpdateStatus sets the status and appends a history entry in one transaction.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, note *string) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		tag, err := tx.Exec(ctx, updateQuery, status, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		if _, err := appendHistory(ctx, tx, id, status, note); err != nil {
			return err
		}

		order, err = r.get(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
