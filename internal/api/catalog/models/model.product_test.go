// Package models - Test giá bán sau giảm và tra variant.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice(t *testing.T) {
	p := Product{SellingPrice: 10000, Discount: 0}
	assert.InDelta(t, 10000, p.FinalPrice(), 0.001)

	p.Discount = 25
	assert.InDelta(t, 7500, p.FinalPrice(), 0.001)

	p.Discount = 100
	assert.InDelta(t, 0, p.FinalPrice(), 0.001)
}

func TestFindVariant(t *testing.T) {
	p := Product{
		Variants: []Variant{
			{VariantID: "den", VariantName: "Đen"},
			{VariantID: "trang", VariantName: "Trắng"},
		},
	}

	v := p.FindVariant("trang")
	assert.NotNil(t, v)
	assert.Equal(t, "Trắng", v.VariantName)

	assert.Nil(t, p.FindVariant("xanh"))
	assert.Nil(t, (&Product{}).FindVariant("den"))
}

func TestFindVariant_TraVeConTroVaoSlice(t *testing.T) {
	// Sửa qua con trỏ phải thấy được trên product (dùng khi đồng bộ sizes tồn kho)
	p := Product{Variants: []Variant{{VariantID: "den"}}}
	v := p.FindVariant("den")
	v.VariantName = "Đen nhám"
	assert.Equal(t, "Đen nhám", p.Variants[0].VariantName)
}
