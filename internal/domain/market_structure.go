package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade represents a journaled trade tagged with the ICT concepts it used.
// Nothing in the dashboard creates trades yet.
type Trade struct {
	ID          uuid.UUID        `json:"id"`
	Pair        string           `json:"pair"`
	Type        TradeSide        `json:"type"`
	Entry       decimal.Decimal  `json:"entry"`
	Exit        *decimal.Decimal `json:"exit,omitempty"`
	StopLoss    decimal.Decimal  `json:"stop_loss"`
	TakeProfit  decimal.Decimal  `json:"take_profit"`
	Size        decimal.Decimal  `json:"size"`
	PnL         *decimal.Decimal `json:"pnl,omitempty"`
	Status      TradeStatus      `json:"status"`
	Timestamp   time.Time        `json:"timestamp"`
	Notes       *string          `json:"notes,omitempty"`
	ICTConcepts []string         `json:"ict_concepts"`
}

// TradeSide is the direction of a trade or liquidity pool
type TradeSide string

// TradeSide constants
const (
	TradeBuy  TradeSide = "buy"
	TradeSell TradeSide = "sell"
)

// TradeStatus is the lifecycle state of a trade
type TradeStatus string

// TradeStatus constants
const (
	TradeOpen      TradeStatus = "open"
	TradeClosed    TradeStatus = "closed"
	TradeCancelled TradeStatus = "cancelled"
)

// MarketStructure groups the ICT reading of a market at a point in time
type MarketStructure struct {
	Trend            Trend             `json:"trend"`
	KeyLevels        []decimal.Decimal `json:"key_levels"`
	LiquidityPools   []LiquidityPool   `json:"liquidity_pools"`
	OrderBlocks      []OrderBlock      `json:"order_blocks"`
	FairValueGaps    []FairValueGap    `json:"fair_value_gaps"`
	SeasonalTendency SeasonalTendency  `json:"seasonal_tendency"`
}

// Trend is the prevailing market direction
type Trend string

// Trend constants
const (
	TrendBullish Trend = "bullish"
	TrendBearish Trend = "bearish"
	TrendRanging Trend = "ranging"
)

// LiquidityPool is a resting cluster of orders around a price
type LiquidityPool struct {
	Price    decimal.Decimal   `json:"price"`
	Type     TradeSide         `json:"type"`
	Strength LiquidityStrength `json:"strength"`
}

// LiquidityStrength grades a liquidity pool
type LiquidityStrength string

const (
	LiquidityWeak   LiquidityStrength = "weak"
	LiquidityMedium LiquidityStrength = "medium"
	LiquidityStrong LiquidityStrength = "strong"
)

// OrderBlock is the last opposing candle range before a displacement
type OrderBlock struct {
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Type      BlockBias       `json:"type"`
	Timeframe string          `json:"timeframe"`
	Tested    bool            `json:"tested"`
}

// FairValueGap is a three-candle price imbalance
type FairValueGap struct {
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Type      BlockBias       `json:"type"`
	Filled    bool            `json:"filled"`
	Timestamp time.Time       `json:"timestamp"`
}

// BlockBias is the direction of an order block or fair value gap
type BlockBias string

const (
	BiasBullish BlockBias = "bullish"
	BiasBearish BlockBias = "bearish"
)
