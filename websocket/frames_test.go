package websocket

const (
	ackSubscribeTrade = `{"success":true,"ret_msg":"","conn_id":"06ae7ff8-7351-4de4-8f65-ae4d6bd6e5a3","request":{"op":"subscribe","args":["trade"]}}`

	pongFrame = `{"success":true,"ret_msg":"pong","conn_id":"06ae7ff8-7351-4de4-8f65-ae4d6bd6e5a3","request":{"op":"ping","args":null}}`

	orderbookSnapshotFrame = `{"topic":"orderBookL2_25.BTCUSD","type":"snapshot","data":[
		{"price":"2999.00","symbol":"BTCUSD","id":29990000,"side":"Buy","size":9},
		{"price":"3000.00","symbol":"BTCUSD","id":30000000,"side":"Buy","size":10},
		{"price":"3000.50","symbol":"BTCUSD","id":30005000,"side":"Sell"}
	],"cross_seq":11518,"timestamp_e6":1555008762209434}`

	orderbookDeltaFrame = `{"topic":"orderBookL2_25.BTCUSD","type":"delta","data":{
		"delete":[{"price":"3001.00","symbol":"BTCUSD","id":30010000,"side":"Sell"}],
		"update":[{"price":"2999.00","symbol":"BTCUSD","id":29990000,"side":"Buy","size":8}],
		"insert":[{"price":"2998.00","symbol":"BTCUSD","id":29980000,"side":"Buy","size":8}],
		"transactTimeE6":0
	},"cross_seq":11519,"timestamp_e6":1555008762209435}`

	tradeFrame = `{"topic":"trade.BTCUSD","data":[
		{"timestamp":"2020-01-12T16:59:59.000Z","trade_time_ms":1582793079000,"symbol":"BTCUSD","side":"Sell","size":328,"price":8799.5,"tick_direction":"ZeroMinusTick","trade_id":"00c706e1-ba52-5bb0-98d0-bf694bdc69f7","cross_seq":1052816407},
		{"timestamp":"2020-01-12T16:59:59.000Z","trade_time_ms":1582793079000,"symbol":"BTCUSD","side":"Buy","size":1,"price":"8800","tick_direction":"PlusTick","trade_id":"32a2b9ba-8b45-5c1e-9185-491c5805fa13","cross_seq":1052816408}
	]}`

	insuranceFrame = `{"topic":"insurance.BTC","data":[{"currency":"BTC","timestamp":"2020-01-11T20:00:00Z","wallet_balance":98786916569}]}`

	instrumentInfoSnapshotFrame = `{"topic":"instrument_info.100ms.BTCUSD","type":"snapshot","data":{
		"id":1,"symbol":"BTCUSD","last_price_e4":81165000,"bid1_price_e4":81165000,"ask1_price_e4":81170000,
		"last_tick_direction":"ZeroPlusTick","prev_price_24h_e4":81585000,"prev_24h_pcnt_e4":-5148,
		"high_price_24h_e4":82900000,"low_price_24h_e4":79655000,"prev_price_1h_e4":81395000,"price_1h_pcnt_e4":-2825,
		"mark_price_e4":81178500,"index_price_e4":81172800,"open_interest":154418471,"open_value_e8":1997561103030,
		"total_turnover_e8":2029370141961401,"turnover_24h_e8":9072939873591,"total_volume":175654418740,"volume_24h":735865248,
		"funding_rate_e6":100,"predicted_funding_rate_e6":100,"cross_seq":1053192577,
		"created_at":"2018-11-14T16:33:26Z","updated_at":"2020-01-12T18:25:16Z","next_funding_time":"2020-01-13T00:00:00Z","countdown_hour":6
	},"cross_seq":1053192634,"timestamp_e6":1578853524091081}`

	instrumentInfoDeltaFrame = `{"topic":"instrument_info.100ms.BTCUSD","type":"delta","data":{
		"delete":[],
		"update":[{"id":1,"symbol":"BTCUSD","prev_price_24h_e4":81565000,"prev_24h_pcnt_e4":-4904,"open_value_e8":2000479681106,
			"total_turnover_e8":2029370495672976,"turnover_24h_e8":9066215468687,"volume_24h":735316391,"cross_seq":1053192657,
			"created_at":"2018-11-14T16:33:26Z","updated_at":"2020-01-12T18:25:25Z"}],
		"insert":[]
	},"cross_seq":1053192657,"timestamp_e6":1578853525691123}`

	klineFrame = `{"topic":"klineV2.1.BTCUSD","data":[{"start":1572425640,"end":1572425700,"open":9200,"close":9202.5,"high":9202.5,"low":9196,"volume":81790,"turnover":8.889247899999999,"confirm":false,"cross_seq":297503466,"timestamp":1572425676958323}],"timestamp_e6":1572425677047994}`

	liquidationFrame = `{"topic":"liquidation","data":{"symbol":"BTCUSD","side":"Buy","price":"33000.5","qty":"0.1","time":1621535066007}}`

	positionFrame = `{"topic":"position","action":"update","data":[{
		"user_id":1,"symbol":"BTCUSD","size":11,"side":"Sell","position_value":"0.00159252","entry_price":"6907.291588174717",
		"liq_price":"7100.234","bust_price":"7088.1234","leverage":"1","order_margin":"1","position_margin":"0.00159252",
		"available_balance":"2","take_profit":"0","tp_trigger_by":"LastPrice","stop_loss":"0","sl_trigger_by":"LastPrice",
		"realised_pnl":"0.10","trailing_stop":"0","trailing_active":"0","wallet_balance":"4.12","risk_id":1,
		"occ_closing_fee":"0.1","occ_funding_fee":"0.1","auto_add_margin":0,"cum_realised_pnl":"0.12",
		"position_status":"Normal","position_seq":14
	}]}`

	executionFrame = `{"topic":"execution","data":[{"symbol":"BTCUSD","side":"Buy","order_id":"xxxxxxxx-xxxx-xxxx-9a8f-4a973eb5c418","exec_id":"xxxxxxxx-xxxx-xxxx-8b66-c3d2fcd352f6","order_link_id":"","price":"8300","order_qty":1,"exec_type":"Trade","exec_qty":1,"exec_fee":"0.00000009","leaves_qty":0,"is_maker":false,"trade_time":"2020-01-14T14:07:23.629Z"}]}`

	orderFrame = `{"topic":"order","data":[{
		"order_id":"xxxxxxxx-xxxx-xxxx-9a8f-4a973eb5c418","order_link_id":"","symbol":"BTCUSD","side":"Sell","order_type":"Market",
		"price":"8579.5","qty":1,"time_in_force":"ImmediateOrCancel","create_type":"CreateByClosing","cancel_type":"",
		"order_status":"Filled","leaves_qty":0,"cum_exec_qty":1,"cum_exec_value":"0.00011655","cum_exec_fee":null,
		"take_profit":"0","stop_loss":"0","trailing_stop":"0","trailing_active":"0",
		"reduce_only":false,"close_on_trigger":false,"timestamp":"2020-01-14T14:09:31.778Z"
	}]}`

	stopOrderFrame = `{"topic":"stop_order","data":[{
		"order_id":"xxxxxxxx-xxxx-xxxx-98fb-335aaa6c613b","order_link_id":"","user_id":1,"symbol":"BTCUSD","side":"Buy",
		"order_type":"Limit","price":"8584.5","qty":1,"time_in_force":"ImmediateOrCancel","create_type":"CreateByStopOrder",
		"cancel_type":"UNKNOWN","order_status":"Untriggered","stop_order_type":"Stop","trigger_by":"LastPrice",
		"trigger_price":"8584.5","close_on_trigger":false,"timestamp":"2020-01-14T14:11:22.062Z"
	}]}`
)
