package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/kapehan/pos-api/internal/domain/repository"
	"github.com/kapehan/pos-api/pkg/pagination"
)

// In-memory fakes for the service tests. The fake transaction manager
// snapshots every participating store before running the unit of work
// and restores the snapshots on error, mirroring a database rollback.

type snapshotter interface {
	snapshot() (restore func())
}

type fakeTxManager struct {
	stores []snapshotter
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	restores := make([]func(), len(m.stores))
	for i, s := range m.stores {
		restores[i] = s.snapshot()
	}
	if err := fn(ctx); err != nil {
		for _, r := range restores {
			r()
		}
		return err
	}
	return nil
}

// fakeIngredientRepo

type fakeIngredientRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Ingredient
}

func newFakeIngredientRepo(ingredients ...*entity.Ingredient) *fakeIngredientRepo {
	r := &fakeIngredientRepo{items: make(map[uuid.UUID]*entity.Ingredient)}
	for _, ing := range ingredients {
		if ing.ID == uuid.Nil {
			ing.ID = uuid.New()
		}
		r.items[ing.ID] = ing
	}
	return r
}

func (r *fakeIngredientRepo) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make(map[uuid.UUID]entity.Ingredient, len(r.items))
	for id, ing := range r.items {
		saved[id] = *ing
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.items = make(map[uuid.UUID]*entity.Ingredient, len(saved))
		for id := range saved {
			ing := saved[id]
			r.items[id] = &ing
		}
	}
}

func (r *fakeIngredientRepo) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	r.items[ingredient.ID] = ingredient
	return nil
}

func (r *fakeIngredientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ing, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *ing
	return &copied, nil
}

func (r *fakeIngredientRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Ingredient, 0, len(ids))
	for _, id := range ids {
		if ing, ok := r.items[id]; ok {
			out = append(out, *ing)
		}
	}
	return out, nil
}

func (r *fakeIngredientRepo) GetByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ing := range r.items {
		if strings.EqualFold(ing.Name, name) {
			copied := *ing
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeIngredientRepo) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[ingredient.ID] = ingredient
	return nil
}

func (r *fakeIngredientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeIngredientRepo) List(ctx context.Context, params *repository.IngredientFilterParams) ([]entity.Ingredient, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Ingredient, 0, len(r.items))
	for _, ing := range r.items {
		out = append(out, *ing)
	}
	return out, int64(len(out)), nil
}

func (r *fakeIngredientRepo) GetLowStock(ctx context.Context) ([]entity.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Ingredient
	for _, ing := range r.items {
		if ing.IsLowStock() {
			out = append(out, *ing)
		}
	}
	return out, nil
}

func (r *fakeIngredientRepo) AtomicDecrementQuantity(ctx context.Context, id uuid.UUID, amount int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ing, ok := r.items[id]
	if !ok || ing.Quantity < amount {
		return false, nil
	}
	ing.Quantity -= amount
	return true, nil
}

func (r *fakeIngredientRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, amount := range increments {
		if ing, ok := r.items[id]; ok {
			ing.Quantity += amount
		}
	}
	return nil
}

// quantity reads the live stock level for assertions.
func (r *fakeIngredientRepo) quantity(id uuid.UUID) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ing, ok := r.items[id]; ok {
		return ing.Quantity
	}
	return 0
}

// fakeMenuItemRepo

type fakeMenuItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.MenuItem
}

func newFakeMenuItemRepo(items ...*entity.MenuItem) *fakeMenuItemRepo {
	r := &fakeMenuItemRepo{items: make(map[uuid.UUID]*entity.MenuItem)}
	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeMenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (r *fakeMenuItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeMenuItemRepo) GetBySlug(ctx context.Context, slug string) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Slug == slug {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeMenuItemRepo) List(ctx context.Context, params *repository.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if params != nil && params.AvailableOnly && !item.Available {
			continue
		}
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMenuItemRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[id]; ok {
		item.Available = available
	}
	return nil
}

func (r *fakeMenuItemRepo) ReplaceRecipe(ctx context.Context, id uuid.UUID, recipe []entity.RecipeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[id]; ok {
		item.Recipe = recipe
	}
	return nil
}

// fakeAddOnRepo

type fakeAddOnRepo struct {
	mu     sync.Mutex
	addons map[uuid.UUID]*entity.AddOn
}

func newFakeAddOnRepo(addons ...*entity.AddOn) *fakeAddOnRepo {
	r := &fakeAddOnRepo{addons: make(map[uuid.UUID]*entity.AddOn)}
	for _, a := range addons {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.addons[a.ID] = a
	}
	return r
}

func (r *fakeAddOnRepo) Create(ctx context.Context, addon *entity.AddOn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if addon.ID == uuid.Nil {
		addon.ID = uuid.New()
	}
	r.addons[addon.ID] = addon
	return nil
}

func (r *fakeAddOnRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addons[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAddOnRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.AddOn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.AddOn, 0, len(ids))
	for _, id := range ids {
		if a, ok := r.addons[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAddOnRepo) Update(ctx context.Context, addon *entity.AddOn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addons[addon.ID] = addon
	return nil
}

func (r *fakeAddOnRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.addons, id)
	return nil
}

func (r *fakeAddOnRepo) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.AddOn, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.AddOn, 0, len(r.addons))
	for _, a := range r.addons {
		if activeOnly && !a.Active {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

// fakeCustomerRepo

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*entity.Customer
	// beforeApply runs before each ApplyPointsDelta, letting tests
	// simulate a concurrent spend between eligibility read and commit.
	beforeApply func()
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make(map[uuid.UUID]entity.Customer, len(r.customers))
	for id, c := range r.customers {
		saved[id] = *c
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.customers = make(map[uuid.UUID]*entity.Customer, len(saved))
		for id := range saved {
			c := saved[id]
			r.customers[id] = &c
		}
	}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Email != nil && strings.EqualFold(*c.Email, email) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) ApplyPointsDelta(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	if r.beforeApply != nil {
		r.beforeApply()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return false, nil
	}
	if delta < 0 && c.LoyaltyPoints+delta < 0 {
		return false, nil
	}
	c.LoyaltyPoints += delta
	return true, nil
}

func (r *fakeCustomerRepo) points(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.customers[id]; ok {
		return c.LoyaltyPoints
	}
	return 0
}

// fakeCheckoutRepo

type fakeCheckoutRepo struct {
	mu        sync.Mutex
	checkouts map[uuid.UUID]*entity.Checkout
}

func newFakeCheckoutRepo(checkouts ...*entity.Checkout) *fakeCheckoutRepo {
	r := &fakeCheckoutRepo{checkouts: make(map[uuid.UUID]*entity.Checkout)}
	for _, c := range checkouts {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.checkouts[c.ID] = c
	}
	return r
}

func (r *fakeCheckoutRepo) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make(map[uuid.UUID]*entity.Checkout, len(r.checkouts))
	for id, c := range r.checkouts {
		saved[id] = c
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.checkouts = make(map[uuid.UUID]*entity.Checkout, len(saved))
		for id, c := range saved {
			r.checkouts[id] = c
		}
	}
}

func (r *fakeCheckoutRepo) Create(ctx context.Context, checkout *entity.Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if checkout.ID == uuid.Nil {
		checkout.ID = uuid.New()
	}
	r.checkouts[checkout.ID] = checkout
	return nil
}

func (r *fakeCheckoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Checkout, error) {
	return r.GetWithItems(ctx, id)
}

func (r *fakeCheckoutRepo) GetByReceiptNo(ctx context.Context, receiptNo int64) (*entity.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.checkouts {
		if c.ReceiptNo == receiptNo {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckoutRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checkouts[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCheckoutRepo) Update(ctx context.Context, checkout *entity.Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkouts[checkout.ID] = checkout
	return nil
}

func (r *fakeCheckoutRepo) List(ctx context.Context, params *repository.CheckoutFilterParams) ([]entity.Checkout, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Checkout, 0, len(r.checkouts))
	for _, c := range r.checkouts {
		if params != nil && params.Status != nil && c.Status != *params.Status {
			continue
		}
		if params != nil && params.CustomerID != nil {
			if c.CustomerID == nil || *c.CustomerID != *params.CustomerID {
				continue
			}
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCheckoutRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.checkouts)
}

// fakeCounterRepo

type fakeCounterRepo struct {
	mu     sync.Mutex
	values map[string]int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{values: make(map[string]int64)}
}

func (r *fakeCounterRepo) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make(map[string]int64, len(r.values))
	for k, v := range r.values {
		saved[k] = v
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.values = saved
	}
}

func (r *fakeCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name]++
	return r.values[name], nil
}

// fakeRestockRepo

type fakeRestockRepo struct {
	mu       sync.Mutex
	restocks map[uuid.UUID]*entity.Restock
}

func newFakeRestockRepo(restocks ...*entity.Restock) *fakeRestockRepo {
	r := &fakeRestockRepo{restocks: make(map[uuid.UUID]*entity.Restock)}
	for _, rs := range restocks {
		if rs.ID == uuid.Nil {
			rs.ID = uuid.New()
		}
		r.restocks[rs.ID] = rs
	}
	return r
}

func (r *fakeRestockRepo) snapshot() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := make(map[uuid.UUID]entity.Restock, len(r.restocks))
	for id, rs := range r.restocks {
		saved[id] = *rs
	}
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.restocks = make(map[uuid.UUID]*entity.Restock, len(saved))
		for id := range saved {
			rs := saved[id]
			r.restocks[id] = &rs
		}
	}
}

func (r *fakeRestockRepo) Create(ctx context.Context, restock *entity.Restock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if restock.ID == uuid.Nil {
		restock.ID = uuid.New()
	}
	r.restocks[restock.ID] = restock
	return nil
}

func (r *fakeRestockRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Restock, error) {
	return r.GetWithDetails(ctx, id)
}

func (r *fakeRestockRepo) GetByRestockNo(ctx context.Context, restockNo string) (*entity.Restock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rs := range r.restocks {
		if rs.RestockNo == restockNo {
			copied := *rs
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRestockRepo) Update(ctx context.Context, restock *entity.Restock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restocks[restock.ID] = restock
	return nil
}

func (r *fakeRestockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.restocks, id)
	return nil
}

func (r *fakeRestockRepo) List(ctx context.Context, params *repository.RestockFilterParams) ([]entity.Restock, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Restock, 0, len(r.restocks))
	for _, rs := range r.restocks {
		if params != nil && params.Status != nil && rs.Status != *params.Status {
			continue
		}
		out = append(out, *rs)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRestockRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Restock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rs, ok := r.restocks[id]
	if !ok {
		return nil, nil
	}
	copied := *rs
	return &copied, nil
}

func (r *fakeRestockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.RestockStatus, updatedBy uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rs, ok := r.restocks[id]; ok {
		rs.Status = status
		rs.UpdatedBy = &updatedBy
	}
	return nil
}

func (r *fakeRestockRepo) GetPending(ctx context.Context, params *pagination.PaginationParams) ([]entity.Restock, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Restock
	for _, rs := range r.restocks {
		if rs.Status == enum.RestockStatusPending {
			out = append(out, *rs)
		}
	}
	return out, int64(len(out)), nil
}

// fakeSupplierRepo

type fakeSupplierRepo struct {
	mu        sync.Mutex
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
	for _, s := range suppliers {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		r.suppliers[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

// fakeUserRepo

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}
